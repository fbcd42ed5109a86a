package auth

import (
	"errors"
	"net/http"

	apperrors "github.com/spec-kit/school-portal/pkg/util"
)

var (
	ErrIdentityNotResolved     = errors.New("auth: identity not resolved")
	ErrCredentialMismatch      = errors.New("auth: credential mismatch")
	ErrAccountDisabled         = errors.New("auth: account disabled")
	ErrTokenMissing            = errors.New("auth: no token")
	ErrTokenInvalid            = errors.New("auth: invalid token")
	ErrTokenExpired            = errors.New("auth: token expired")
	ErrAuthenticationRequired  = errors.New("auth: authentication required")
	ErrInsufficientPermissions = errors.New("auth: insufficient permissions")
	ErrSigningSecretMissing    = errors.New("auth: signing secret not configured")
	ErrTooManyAttempts         = errors.New("auth: too many login attempts")
)

// ShapeError is returned by a role-specific gate whose identifier guard failed.
type ShapeError struct {
	Message string
}

func (e *ShapeError) Error() string { return "auth: " + e.Message }

func (e *ShapeError) Is(target error) bool { return target == ErrInsufficientPermissions }

var errorTable = []struct {
	err  error
	resp *apperrors.DomainError
}{
	{ErrIdentityNotResolved, apperrors.NewDomainError("IDENTITY_NOT_RESOLVED", "Invalid credentials - User not found", http.StatusUnauthorized, nil)},
	{ErrCredentialMismatch, apperrors.NewDomainError("CREDENTIAL_MISMATCH", "Invalid credentials - Incorrect password", http.StatusUnauthorized, nil)},
	{ErrAccountDisabled, apperrors.NewDomainError("ACCOUNT_DISABLED", "Account is deactivated", http.StatusUnauthorized, nil)},
	{ErrTokenMissing, apperrors.NewDomainError("TOKEN_MISSING", "No authentication token provided", http.StatusUnauthorized, nil)},
	{ErrTokenExpired, apperrors.NewDomainError("TOKEN_EXPIRED", "Token expired", http.StatusUnauthorized, nil)},
	{ErrTokenInvalid, apperrors.NewDomainError("TOKEN_INVALID", "Invalid token", http.StatusUnauthorized, nil)},
	{ErrAuthenticationRequired, apperrors.NewDomainError("AUTHENTICATION_REQUIRED", "Authentication required", http.StatusUnauthorized, nil)},
	{ErrTooManyAttempts, apperrors.NewDomainError("TOO_MANY_ATTEMPTS", "Too many login attempts, try again later", http.StatusTooManyRequests, nil)},
}

// ToDomainError maps auth failures onto their HTTP representation. Anything it
// does not recognise, including a missing signing secret, becomes a generic 500.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return apperrors.NewDomainError("INSUFFICIENT_PERMISSIONS", shapeErr.Message, http.StatusForbidden, nil).Wrap(err)
	}
	if errors.Is(err, ErrInsufficientPermissions) {
		return apperrors.NewDomainError("INSUFFICIENT_PERMISSIONS", "Insufficient permissions", http.StatusForbidden, nil).Wrap(err)
	}
	for _, entry := range errorTable {
		if errors.Is(err, entry.err) {
			return entry.resp.Wrap(err)
		}
	}
	return apperrors.ToDomainError(err)
}
