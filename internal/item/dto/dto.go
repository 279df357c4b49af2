package dto

// ItemCommand is the availability message carried on the items-commands
// topic. Action is either "update" (set Available) or "toggle".
type ItemCommand struct {
	EventID   string `json:"event_id,omitempty"`
	Action    string `json:"action"`
	ID        int64  `json:"id"`
	Available bool   `json:"available"`
}

const (
	ActionUpdate = "update"
	ActionToggle = "toggle"
)
