package client

import (
	"context"

	"github.com/dkarpovs/libshelf/internal/client/models"
)

// Client is the remote API surface consumed by the CLI.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context) (*models.User, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	SearchBooks(ctx context.Context, query string) ([]models.Book, error)
	BooksByGenre(ctx context.Context, genre string) ([]models.Book, error)
	BorrowBook(ctx context.Context, id string) (*models.Book, error)
	ReturnBook(ctx context.Context, id string) (*models.Book, error)
}

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means "send the request unauthenticated".
type TokenSource interface {
	BearerToken(ctx context.Context) (string, error)
}

// SessionInvalidator is the narrow capability the gateway uses to clear the
// session after an authorization failure. Implementations must absorb their
// own errors; invalidation never fails the triggering request beyond the
// authorization error already being returned.
type SessionInvalidator interface {
	Invalidate(ctx context.Context)
}
