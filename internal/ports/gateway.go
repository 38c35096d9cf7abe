package ports

import (
	"context"

	"github.com/bnema/dcms-cli/internal/domain"
)

// Gateway talks to the DCMS backend. Failures come back as *domain.AuthError,
// *domain.ConnectivityError or *domain.ServerError.
type Gateway interface {
	Login(ctx context.Context, username, password string) (domain.Session, error)
	// FetchBundle requests an unscoped preview when userID is domain.AnonymousUserID.
	FetchBundle(ctx context.Context, userID domain.UserID) (domain.Bundle, error)
	ResolveAttachmentURL(rawURL string) (string, bool)
}
