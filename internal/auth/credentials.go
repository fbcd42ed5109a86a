package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/spec-kit/school-portal/internal/domain"
	"github.com/spec-kit/school-portal/internal/repository"
)

// CredentialVerifier checks a supplied secret for a resolved identity.
type CredentialVerifier interface {
	Verify(ctx context.Context, identity domain.Identity, secret string) error
}

// RoleSecrets holds one shared secret per token role.
type RoleSecrets struct {
	Admin   string
	Staff   string
	Learner string
}

// FixedSecretVerifier compares the secret against a single value per role.
//
// Every account of a role shares the same secret. It exists so deployments
// without a populated user store keep working; StoredHashVerifier is the
// per-user replacement.
type FixedSecretVerifier struct {
	secrets map[domain.Role]string
}

// NewFixedSecretVerifier builds a verifier from the configured role secrets.
func NewFixedSecretVerifier(secrets RoleSecrets) *FixedSecretVerifier {
	return &FixedSecretVerifier{secrets: map[domain.Role]string{
		domain.RoleAdmin:   secrets.Admin,
		domain.RoleStaff:   secrets.Staff,
		domain.RoleLearner: secrets.Learner,
	}}
}

// Verify implements CredentialVerifier.
func (v *FixedSecretVerifier) Verify(_ context.Context, identity domain.Identity, secret string) error {
	expected, ok := v.secrets[identity.Role]
	if !ok || expected == "" {
		return ErrCredentialMismatch
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(secret)) != 1 {
		return ErrCredentialMismatch
	}
	return nil
}

// UserFinder is the user store lookup consumed by the stored-hash path.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// StoredHashVerifier checks the secret against the bcrypt hash stored for the user.
type StoredHashVerifier struct {
	users UserFinder
}

// NewStoredHashVerifier constructs the verifier.
func NewStoredHashVerifier(users UserFinder) *StoredHashVerifier {
	return &StoredHashVerifier{users: users}
}

// Verify implements CredentialVerifier.
func (v *StoredHashVerifier) Verify(ctx context.Context, identity domain.Identity, secret string) error {
	user, err := v.users.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrCredentialMismatch
		}
		return err
	}

	expected, ok := identity.Role.ResourceRole()
	if !ok || user.Role != expected {
		return ErrCredentialMismatch
	}
	if err := ComparePassword(user.PasswordHash, secret); err != nil {
		return err
	}
	if !user.Active() {
		return ErrAccountDisabled
	}
	return nil
}
