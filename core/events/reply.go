package events

const (
	// KindReplySpoken identifies a reply handed to speech output.
	KindReplySpoken Kind = "assistant_reply.spoken"
)

// ReplySpoken carries the text of a reply handed to speech output.
type ReplySpoken struct {
	Base
	Text string
}

// NewReplySpoken creates a reply spoken event.
func NewReplySpoken(text string) ReplySpoken {
	return ReplySpoken{Base: NewBase(KindReplySpoken), Text: text}
}
