package events

const (
	// KindMessageAppended identifies conversation log growth.
	KindMessageAppended Kind = "conversation.message_appended"
)

// MessageAppended carries a message added to the conversation log.
type MessageAppended struct {
	Base
	ID   string
	Role string
	Text string
}

// NewMessageAppended creates a message appended event.
func NewMessageAppended(id, role, text string) MessageAppended {
	return MessageAppended{Base: NewBase(KindMessageAppended), ID: id, Role: role, Text: text}
}
