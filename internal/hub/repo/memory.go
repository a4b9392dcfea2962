package repo

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/community-support-hub/server/internal/hub/model"
)

type memorySession struct {
	state    model.ConversationState
	hasState bool
	entries  []model.MessageLogEntry
}

// MemoryConversationRepository keeps sessions in process memory with the
// same sliding TTL as the Redis repository. Used when no Redis is configured.
type MemoryConversationRepository struct {
	mu    sync.Mutex
	store *cache.Cache
	ttl   time.Duration
}

func NewMemoryConversationRepository(ttl time.Duration) *MemoryConversationRepository {
	exp := ttl
	if exp <= 0 {
		exp = cache.NoExpiration
	}
	return &MemoryConversationRepository{
		store: cache.New(exp, 10*time.Minute),
		ttl:   exp,
	}
}

func (m *MemoryConversationRepository) session(id string) *memorySession {
	if v, ok := m.store.Get(id); ok {
		return v.(*memorySession)
	}
	return &memorySession{}
}

func (m *MemoryConversationRepository) AddEntries(_ context.Context, conversationID string, entries ...model.MessageLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(conversationID)
	s.entries = append(s.entries, entries...)
	m.store.Set(conversationID, s, m.ttl)
	return nil
}

func (m *MemoryConversationRepository) LoadTranscript(_ context.Context, conversationID string) (*model.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(conversationID)
	entries := make([]model.MessageLogEntry, len(s.entries))
	copy(entries, s.entries)
	return &model.Transcript{ConversationID: conversationID, Entries: entries}, nil
}

func (m *MemoryConversationRepository) SaveState(_ context.Context, conversationID string, state model.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(conversationID)
	s.state = state
	s.hasState = true
	m.store.Set(conversationID, s, m.ttl)
	return nil
}

func (m *MemoryConversationRepository) LoadState(_ context.Context, conversationID string) (model.ConversationState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(conversationID)
	return s.state, s.hasState, nil
}

func (m *MemoryConversationRepository) ClearHistory(_ context.Context, conversationID string) error {
	m.store.Delete(conversationID)
	return nil
}

func (m *MemoryConversationRepository) GetMessageCount(_ context.Context, conversationID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.session(conversationID).entries), nil
}

var _ model.ConversationRepository = (*MemoryConversationRepository)(nil)
