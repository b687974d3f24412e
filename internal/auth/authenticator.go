// Package auth registers household members and issues the tokens that tie
// each RPC to a member name.
package auth

import (
	"context"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// Authenticator signs members up and checks their credentials. The service
// layer only sees this interface, so the password flow can be swapped for
// another method later.
type Authenticator interface {
	// Register creates a household member account. displayName becomes the
	// member name used for assignees, payers and splits.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the member whose credentials match.
	// Any mismatch is ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential reports whether a new credential is acceptable.
	ValidateCredential(credential string) error
}

// UserStorage is the account persistence auth needs. Lookups of unknown
// users return an error wrapping storage.ErrNotFound.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
