package chat

// Turn roles understood by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message unit in a conversation. Turns are immutable once
// appended to a transcript.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
