package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TelegramClient posts plain-text messages to a fixed chat via the Bot API.
type TelegramClient struct {
	token  string
	chatID string
	client *http.Client
}

func NewTelegramClient(token, chatID string) (*TelegramClient, error) {
	if token == "" || chatID == "" {
		return nil, errors.New("telegram credentials not configured")
	}
	return &TelegramClient{
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (t *TelegramClient) SendMessage(ctx context.Context, message string) error {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.token)

	form := url.Values{}
	form.Set("chat_id", t.chatID)
	form.Set("text", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+form.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram sendMessage status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
