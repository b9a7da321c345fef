package models

import "time"

// Participant is one side of a conversation.
type Participant struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

// Message is a single chat message. CorrelationID is generated on the
// sending side so the server echo can be matched back to the optimistic
// copy; Optimistic is never serialized, it only marks local entries that
// are still awaiting their echo.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	RecipientID    string    `json:"recipientId"`
	Content        string    `json:"content"`
	CorrelationID  string    `json:"correlationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	Read           bool      `json:"read"`
	Optimistic     bool      `json:"-"`
}

// Conversation joins exactly two participants.
type Conversation struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants"`
	Messages     []Message     `json:"messages"`
	UnreadCount  int           `json:"unreadCount"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Counterpart returns the participant that is not the given user.
func (c *Conversation) Counterpart(selfUserID string) (Participant, bool) {
	for _, p := range c.Participants {
		if p.UserID != selfUserID {
			return p, true
		}
	}
	return Participant{}, false
}

// HasParticipant reports whether userID takes part in this conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// LastActivity is the timestamp of the newest message, falling back to
// the conversation's creation time when no messages exist yet.
func (c *Conversation) LastActivity() time.Time {
	if len(c.Messages) == 0 {
		return c.CreatedAt
	}
	return c.Messages[len(c.Messages)-1].CreatedAt
}
