package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/bnema/dcms-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultKey is the single slot holding the signed-in user.
const DefaultKey = "dcms_user.toml"

type Store struct {
	slots  ports.KeyValueStore
	key    string
	logger *log.Logger
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(slots ports.KeyValueStore, key string, logger *log.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Store{slots: slots, key: key, logger: logger}
}

func (s *Store) Restore(ctx context.Context) (domain.Session, bool) {
	raw, err := s.slots.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Printf("[session] restore failed, continuing signed out: %v", err)
		}
		return domain.Session{}, false
	}

	session, err := decode(raw)
	if err != nil {
		s.logger.Printf("[session] discarding persisted session: %v", err)
		if deleteErr := s.slots.Delete(ctx, s.key); deleteErr != nil {
			s.logger.Printf("[session] delete unreadable session: %v", deleteErr)
		}
		return domain.Session{}, false
	}

	return session, true
}

func (s *Store) Save(ctx context.Context, session domain.Session) error {
	data, err := toml.Marshal(toSchema(session))
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.slots.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.slots.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func decode(raw string) (domain.Session, error) {
	var file fileSchema
	if err := toml.Unmarshal([]byte(raw), &file); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if err := file.validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return fromSchema(*file.Session), nil
}
