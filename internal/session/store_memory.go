package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store used in tests and when no REDIS_URL is
// configured. The session then lives only as long as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	vals map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: make(map[string]string)}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals[keyToken], nil
}

func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals[keyToken] = token
	return nil
}

func (s *MemoryStore) UserInfo(ctx context.Context) (UserInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return UserInfo{Email: s.vals[keyEmail], Nickname: s.vals[keyNickname]}, nil
}

func (s *MemoryStore) SetUserInfo(ctx context.Context, email, nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals[keyEmail] = email
	s.vals[keyNickname] = nickname
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals = make(map[string]string)
	return nil
}
