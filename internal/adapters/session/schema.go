package session

import (
	"errors"
	"fmt"

	"github.com/bnema/dcms-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session"`
}

type sessionSchema struct {
	ID       int64  `toml:"id"`
	Name     string `toml:"name"`
	Role     string `toml:"role"`
	Username string `toml:"username,omitempty"`
}

func (s fileSchema) validate() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	if s.Session == nil {
		return errors.New("session table is missing")
	}

	return nil
}

func toSchema(session domain.Session) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Session: &sessionSchema{
			ID:       int64(session.ID),
			Name:     session.Name,
			Role:     session.Role,
			Username: session.Username,
		},
	}
}

func fromSchema(schema sessionSchema) domain.Session {
	return domain.Session{
		ID:       domain.UserID(schema.ID),
		Name:     schema.Name,
		Role:     schema.Role,
		Username: schema.Username,
	}
}
