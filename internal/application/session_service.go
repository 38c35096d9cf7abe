package application

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/bnema/dcms-cli/internal/ports"
)

// SessionService owns the active session. Login only returns after the session is persisted,
// so anything keyed on Current() observes the new identity together with its durable record.
type SessionService struct {
	gateway ports.Gateway
	store   ports.SessionStore
	logger  *log.Logger

	mu      sync.RWMutex
	current *domain.Session
}

func NewSessionService(gateway ports.Gateway, store ports.SessionStore, logger *log.Logger) *SessionService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &SessionService{gateway: gateway, store: store, logger: logger}
}

// Restore loads the persisted session, if any, and makes it current.
func (s *SessionService) Restore(ctx context.Context) *domain.Session {
	session, ok := s.store.Restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !ok {
		s.current = nil
		return nil
	}

	s.current = &session
	s.logger.Printf("[session] restored user=%s", session.ID)
	return cloneSession(s.current)
}

func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSession(s.current)
}

func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	s.logger.Printf("[session] login attempt username=%q", username)

	session, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		s.logger.Printf("[session] login failed: %v", err)
		return domain.Session{}, err
	}

	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()

	s.logger.Printf("[session] signed in user=%s role=%q", session.ID, session.Role)
	return session, nil
}

// Logout drops the in-memory session even when clearing the persisted record fails.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Printf("[session] signed out")
	return nil
}

func cloneSession(session *domain.Session) *domain.Session {
	if session == nil {
		return nil
	}

	copied := *session
	return &copied
}
