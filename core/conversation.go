package orchestration

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single entry in the conversation log.
type ChatMessage struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

type conversationLog struct {
	mu       sync.RWMutex
	messages []ChatMessage
}

func (c *conversationLog) append(role Role, text string) ChatMessage {
	message := ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
	return message
}

// History returns a point-in-time copy of the conversation log, oldest
// message first.
func (c *conversationLog) History() []ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var history []ChatMessage
	copier.Copy(&history, c.messages)
	return history
}

func (c *conversationLog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}
