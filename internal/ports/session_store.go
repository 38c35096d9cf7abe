package ports

import (
	"context"

	"github.com/bnema/dcms-cli/internal/domain"
)

type SessionStore interface {
	// Restore never fails: missing or unreadable records yield ok == false.
	Restore(ctx context.Context) (session domain.Session, ok bool)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
