package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"weddify/models"
	"weddify/services/notification"
	"weddify/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the channel lifecycle of a store instance.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	}
	return "disconnected"
}

// ConversationAPI is the REST side of the conversation feature. Both the
// client and vendor service façades satisfy it.
type ConversationAPI interface {
	Conversations(ctx context.Context) ([]models.Conversation, error)
	StartConversation(ctx context.Context, counterpartID string) (models.Conversation, error)
}

type sendMessagePayload struct {
	ConversationID string `json:"conversationId"`
	Content        string `json:"content"`
	ToUserID       string `json:"toUserId"`
	CorrelationID  string `json:"correlationId,omitempty"`
}

type markAsReadPayload struct {
	MessageID string `json:"messageId"`
}

// pendingStart serializes concurrent StartConversation calls for the
// same counterpart: the first call issues the create, the rest wait for
// its result.
type pendingStart struct {
	done chan struct{}
	conv models.Conversation
	err  error
}

// Store owns the socket channel, the conversation list, the focused
// conversation and its live message buffer. It reconciles optimistic
// sends with their server echoes and keeps unread counts.
type Store struct {
	api      ConversationAPI
	channel  Channel
	sessions session.Store
	notifier notification.Notifier
	logger   *zap.Logger

	mu            sync.Mutex
	state         State
	conversations []models.Conversation
	currentID     string
	messages      []models.Message
	pending       map[string]*pendingStart
}

func NewStore(api ConversationAPI, channel Channel, sessions session.Store, notifier notification.Notifier, logger *zap.Logger) *Store {
	s := &Store{
		api:      api,
		channel:  channel,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
		pending:  make(map[string]*pendingStart),
	}
	channel.OnMessage(s.handleInbound)
	channel.OnError(func(err error) {
		s.notifier.Error("Chat connection error: " + err.Error())
	})
	return s
}

// Connect brings the channel up. Connection failures are reported as a
// notification as well as returned; store state is left disconnected.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateConnecting
	s.mu.Unlock()

	if err := s.channel.Connect(ctx); err != nil {
		s.mu.Lock()
		s.state = StateDisconnected
		s.mu.Unlock()
		s.notifier.Error("Chat connection error: " + err.Error())
		return err
	}

	s.mu.Lock()
	s.state = StateConnected
	s.mu.Unlock()
	return nil
}

// Close tears the channel down and clears the focus.
func (s *Store) Close() error {
	err := s.channel.Close()
	s.mu.Lock()
	s.state = StateDisconnected
	s.currentID = ""
	s.messages = nil
	s.mu.Unlock()
	return err
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) selfID() string {
	sess, _ := s.sessions.Get()
	return sess.UserID
}

func countUnread(messages []models.Message, selfID string) int {
	n := 0
	for _, m := range messages {
		if !m.Read && m.SenderID != selfID {
			n++
		}
	}
	return n
}

func sortByActivity(conversations []models.Conversation) {
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastActivity().After(conversations[j].LastActivity())
	})
}

// FetchConversations pulls the full list from REST. It is safe to call
// repeatedly: the focused conversation's live buffer is merged into the
// fresh list rather than discarded, so optimistic messages that have not
// echoed yet survive a refresh.
func (s *Store) FetchConversations(ctx context.Context) error {
	fetched, err := s.api.Conversations(ctx)
	if err != nil {
		s.notifier.Error("Could not load conversations. Please try again later.")
		return err
	}

	me := s.selfID()
	for i := range fetched {
		fetched[i].UnreadCount = countUnread(fetched[i].Messages, me)
	}
	sortByActivity(fetched)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID != "" {
		for i := range fetched {
			if fetched[i].ID != s.currentID {
				continue
			}
			// Socket deliveries may be ahead of a stale REST response;
			// every local message the fetch lacks survives, not just the
			// optimistic ones.
			merged := append([]models.Message(nil), fetched[i].Messages...)
			for _, local := range s.messages {
				if !containsMessage(fetched[i].Messages, local) {
					merged = append(merged, local)
				}
			}
			s.messages = merged
			fetched[i].Messages = merged
			// The focused conversation stays read.
			fetched[i].UnreadCount = 0
			break
		}
	}
	s.conversations = fetched
	return nil
}

// containsMessage reports whether the fetched list already holds this
// local message: matched by id, by correlation id, or for optimistic
// entries by content within the same conversation.
func containsMessage(messages []models.Message, local models.Message) bool {
	for _, m := range messages {
		if local.ID != "" && m.ID == local.ID {
			return true
		}
		if local.CorrelationID != "" && m.CorrelationID == local.CorrelationID {
			return true
		}
		if local.Optimistic && m.ConversationID == local.ConversationID &&
			m.Content == local.Content && m.SenderID == local.SenderID {
			return true
		}
	}
	return false
}

// reconcileEcho replaces the optimistic entry matching msg, by
// correlation id or by content within the same conversation. It reports
// whether a replacement happened.
func reconcileEcho(messages []models.Message, msg models.Message) bool {
	for i := range messages {
		m := messages[i]
		if !m.Optimistic {
			continue
		}
		if (msg.CorrelationID != "" && m.CorrelationID == msg.CorrelationID) ||
			(m.ConversationID == msg.ConversationID && m.Content == msg.Content) {
			messages[i] = msg
			return true
		}
	}
	return false
}

// StartConversation returns the existing conversation with the
// counterpart when one exists (at most one conversation per pair),
// otherwise creates one. Concurrent calls for the same counterpart are
// serialized onto a single create.
func (s *Store) StartConversation(ctx context.Context, counterpartID string) (models.Conversation, error) {
	s.mu.Lock()
	for i := range s.conversations {
		if s.conversations[i].HasParticipant(counterpartID) {
			conv := s.conversations[i]
			acks := s.selectLocked(conv)
			s.mu.Unlock()
			s.emitSelection(conv.ID, acks)
			return conv, nil
		}
	}
	if p, ok := s.pending[counterpartID]; ok {
		s.mu.Unlock()
		select {
		case <-p.done:
		case <-ctx.Done():
			return models.Conversation{}, ctx.Err()
		}
		if p.err != nil {
			return models.Conversation{}, p.err
		}
		return p.conv, nil
	}
	p := &pendingStart{done: make(chan struct{})}
	s.pending[counterpartID] = p
	s.mu.Unlock()

	conv, err := s.api.StartConversation(ctx, counterpartID)
	if err == nil && conv.Messages == nil {
		conv.Messages = []models.Message{}
	}

	s.mu.Lock()
	p.conv, p.err = conv, err
	delete(s.pending, counterpartID)
	close(p.done)
	if err != nil {
		s.mu.Unlock()
		s.notifier.Error("Failed to start conversation. Please try again.")
		return models.Conversation{}, err
	}
	s.conversations = append([]models.Conversation{conv}, s.conversations...)
	acks := s.selectLocked(conv)
	s.mu.Unlock()

	s.emitSelection(conv.ID, acks)
	return conv, nil
}

// SelectConversation focuses a conversation; nil clears the focus and
// the message buffer.
func (s *Store) SelectConversation(conv *models.Conversation) {
	if conv == nil {
		s.mu.Lock()
		s.currentID = ""
		s.messages = nil
		s.mu.Unlock()
		return
	}
	s.mu.Lock()
	acks := s.selectLocked(*conv)
	s.mu.Unlock()
	s.emitSelection(conv.ID, acks)
}

// SelectConversationByID resolves the id against the fetched list. An
// unknown id is logged and ignored.
func (s *Store) SelectConversationByID(id string) {
	s.mu.Lock()
	var found *models.Conversation
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			found = &s.conversations[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		s.logger.Error("conversation not found", zap.String("conversationId", id))
		return
	}
	conv := *found
	acks := s.selectLocked(conv)
	s.mu.Unlock()
	s.emitSelection(conv.ID, acks)
}

// selectLocked sets the focus and zeroes the unread count. It returns
// the ids of messages that need a read acknowledgement on the socket.
// Caller holds s.mu.
func (s *Store) selectLocked(conv models.Conversation) []string {
	s.currentID = conv.ID
	s.messages = append([]models.Message(nil), conv.Messages...)

	var acks []string
	me := s.selfID()
	for i := range s.conversations {
		if s.conversations[i].ID != conv.ID {
			continue
		}
		if s.conversations[i].UnreadCount > 0 {
			for _, m := range s.conversations[i].Messages {
				if !m.Read && m.SenderID != me {
					acks = append(acks, m.ID)
				}
			}
		}
		s.conversations[i].UnreadCount = 0
		break
	}
	return acks
}

// emitSelection joins the conversation room and acknowledges reads.
// Emissions happen outside the store lock.
func (s *Store) emitSelection(conversationID string, ackIDs []string) {
	if err := s.channel.Emit(eventJoinConversation, conversationID); err != nil {
		s.logger.Warn("failed to join conversation room", zap.Error(err))
	}
	for _, id := range ackIDs {
		if err := s.channel.Emit(eventMarkAsRead, markAsReadPayload{MessageID: id}); err != nil {
			s.logger.Warn("failed to acknowledge read", zap.Error(err))
		}
	}
}

// SendMessage appends an optimistic message to the live buffer and emits
// the send event. It never waits for an acknowledgement; the echo
// arriving on the channel replaces the optimistic copy.
func (s *Store) SendMessage(content, toUserID string) (models.Message, error) {
	s.mu.Lock()
	if s.currentID == "" {
		s.mu.Unlock()
		return models.Message{}, ErrNoActiveConversation
	}
	me := s.selfID()
	if toUserID == "" {
		for i := range s.conversations {
			if s.conversations[i].ID == s.currentID {
				if counterpart, ok := s.conversations[i].Counterpart(me); ok {
					toUserID = counterpart.UserID
				}
				break
			}
		}
	}

	correlationID := uuid.NewString()
	msg := models.Message{
		ID:             correlationID,
		ConversationID: s.currentID,
		SenderID:       me,
		RecipientID:    toUserID,
		Content:        content,
		CorrelationID:  correlationID,
		CreatedAt:      time.Now().UTC(),
		Optimistic:     true,
	}
	s.messages = append(s.messages, msg)
	for i := range s.conversations {
		if s.conversations[i].ID == s.currentID {
			s.conversations[i].Messages = append(s.conversations[i].Messages, msg)
			break
		}
	}
	conversationID := s.currentID
	s.mu.Unlock()

	err := s.channel.Emit(eventSendMessage, sendMessagePayload{
		ConversationID: conversationID,
		Content:        content,
		ToUserID:       toUserID,
		CorrelationID:  correlationID,
	})
	if err != nil {
		s.notifier.Error("Failed to send message. Please try again.")
		return msg, err
	}
	return msg, nil
}

// handleInbound applies a message from the channel. For the focused
// conversation it replaces the matching optimistic entry or appends; for
// any other conversation it does the same against the conversation
// record and bumps the unread counter, unless the message is the user's
// own echo caught after a focus switch. Socket and REST deliveries may
// interleave in any order; reconciliation keeps every buffer free of
// duplicates either way.
func (s *Store) handleInbound(msg models.Message) {
	me := s.selfID()
	ackID := ""

	s.mu.Lock()
	if s.currentID != "" && msg.ConversationID == s.currentID {
		if !reconcileEcho(s.messages, msg) {
			s.messages = append(s.messages, msg)
		}
		for i := range s.conversations {
			if s.conversations[i].ID == msg.ConversationID {
				s.conversations[i].Messages = append([]models.Message(nil), s.messages...)
				break
			}
		}
		if msg.RecipientID == me {
			ackID = msg.ID
		}
	} else {
		for i := range s.conversations {
			if s.conversations[i].ID == msg.ConversationID {
				if !reconcileEcho(s.conversations[i].Messages, msg) {
					s.conversations[i].Messages = append(s.conversations[i].Messages, msg)
				}
				if msg.SenderID != me {
					s.conversations[i].UnreadCount++
				}
				break
			}
		}
	}
	sortByActivity(s.conversations)
	s.mu.Unlock()

	if ackID != "" {
		if err := s.channel.Emit(eventMarkAsRead, markAsReadPayload{MessageID: ackID}); err != nil {
			s.logger.Warn("failed to acknowledge read", zap.Error(err))
		}
	}
}

// Conversations returns a snapshot of the conversation list.
func (s *Store) Conversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Conversation(nil), s.conversations...)
}

// Current returns the focused conversation, if any.
func (s *Store) Current() (models.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == "" {
		return models.Conversation{}, false
	}
	for i := range s.conversations {
		if s.conversations[i].ID == s.currentID {
			return s.conversations[i], true
		}
	}
	return models.Conversation{}, false
}

// Messages returns a snapshot of the focused conversation's buffer.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// TotalUnreadCount sums unread counts across all conversations; vendor
// screens badge this on the chat entry.
func (s *Store) TotalUnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for i := range s.conversations {
		total += s.conversations[i].UnreadCount
	}
	return total
}
