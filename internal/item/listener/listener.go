package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lodfresh/customer-service/internal/item"
	"github.com/lodfresh/customer-service/internal/item/dto"
	"github.com/lodfresh/customer-service/pkg/broker"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

// ItemCommandListener consumes availability commands and applies them to
// the item store. Malformed or unknown messages are logged and skipped.
type ItemCommandListener struct {
	consumer *broker.KafkaConsumer
	uc       item.UseCase
	logger   logger.ZapLogger
}

func NewItemCommandListener(consumer *broker.KafkaConsumer, uc item.UseCase, logger logger.ZapLogger) *ItemCommandListener {
	return &ItemCommandListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *ItemCommandListener) Start(ctx context.Context) {
	l.logger.Info("Starting item command Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping item command Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *ItemCommandListener) processMessage(ctx context.Context, value []byte) {
	var cmd dto.ItemCommand
	if err := json.Unmarshal(value, &cmd); err != nil {
		l.logger.Error("Failed to unmarshal item command", zap.Error(err), zap.ByteString("payload", value))
		return
	}

	switch cmd.Action {
	case dto.ActionUpdate:
		if _, err := l.uc.SetAvailability(ctx, cmd.ID, cmd.Available); err != nil {
			l.logger.Warn("update command failed", zap.Int64("id", cmd.ID), zap.Error(err))
		}
	case dto.ActionToggle:
		if _, err := l.uc.ToggleAvailability(ctx, cmd.ID); err != nil {
			l.logger.Warn("toggle command failed", zap.Int64("id", cmd.ID), zap.Error(err))
		}
	default:
		l.logger.Warn("unknown item command action", zap.String("action", cmd.Action))
	}
}
