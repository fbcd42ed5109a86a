package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/school-portal/internal/domain"
)

// DefaultTokenTTL is the lifetime of every issued token.
const DefaultTokenTTL = 24 * time.Hour

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenManager builds a new manager. The secret must be non-empty.
func NewTokenManager(secret string, ttl time.Duration, issuer string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrSigningSecretMissing
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}, nil
}

// WithClock returns a copy of the manager that reads time from now.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	cp := *tm
	cp.now = now
	return &cp
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Claims describes the JWT payload.
type Claims struct {
	UserID       string      `json:"id"`
	Role         domain.Role `json:"role"`
	DepartmentID string      `json:"departmentId,omitempty"`
	Name         string      `json:"name"`
	jwt.RegisteredClaims
}

// Identity rebuilds the identity carried by the claims.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{
		ID:           c.UserID,
		Role:         c.Role,
		DepartmentID: c.DepartmentID,
		DisplayName:  c.Name,
	}
}

// Issue builds and signs a token for the identity.
func (tm *TokenManager) Issue(identity domain.Identity) (string, time.Time, error) {
	if tm == nil || len(tm.secret) == 0 {
		return "", time.Time{}, ErrSigningSecretMissing
	}

	issuedAt := tm.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(tm.ttl)
	claims := &Claims{
		UserID:       identity.ID,
		Role:         identity.Role,
		DepartmentID: identity.DepartmentID,
		Name:         identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tm.issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature and expiry and returns the claims. A token whose
// expiry equals the current instant is already expired.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	if tm == nil || len(tm.secret) == 0 {
		return nil, ErrSigningSecretMissing
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
