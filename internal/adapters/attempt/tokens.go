// Package attempt issues and redeems the signed tokens that carry a contact
// form's creation time. A token is an HS256 JWT whose iat claim is the moment
// the form was rendered, with a millisecond copy in created_ms since iat only
// has second precision. Each token can be redeemed once.
package attempt

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/campus-web/internal/domain/antispam"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

// Compile-time check that Tokens implements ports.AttemptTokens.
var _ ports.AttemptTokens = (*Tokens)(nil)

const (
	subject       = "contact-form"
	minSecretSize = 32
)

// Config defines how tokens are signed and how long they stay valid.
type Config struct {
	Issuer string
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

// claims is the token payload.
type claims struct {
	jwt.RegisteredClaims
	CreatedMS int64 `json:"created_ms"`
}

// Tokens implements ports.AttemptTokens. The ledger of redeemed token IDs is
// the only mutable state and is guarded by mu.
type Tokens struct {
	issuer string
	key    []byte
	ttl    time.Duration
	now    func() time.Time

	mu   sync.Mutex
	used map[string]time.Time
}

// New creates a token issuer. An empty secret is replaced by a random one,
// which invalidates outstanding tokens on restart.
func New(cfg Config) (*Tokens, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("attempt tokens: issuer is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("attempt tokens: ttl must be positive")
	}
	key := cfg.Secret
	if len(key) == 0 {
		key = make([]byte, minSecretSize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("attempt tokens: generating secret: %w", err)
		}
	}
	if len(key) < minSecretSize {
		return nil, fmt.Errorf("attempt tokens: secret must be at least %d bytes", minSecretSize)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Tokens{
		issuer: cfg.Issuer,
		key:    key,
		ttl:    cfg.TTL,
		now:    cfg.Now,
		used:   make(map[string]time.Time),
	}, nil
}

// Issue signs a token recording createdAt. The expiry counts from now so a
// retry token for an old form is still usable.
func (t *Tokens) Issue(_ context.Context, createdAt time.Time) (string, error) {
	now := t.now()
	c := claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(createdAt),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}, CreatedMS: createdAt.UnixMilli()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("signing attempt token: %w", err)
	}
	return signed, nil
}

// Redeem verifies the token, records its ID as used, and returns the
// creation time it carries.
func (t *Tokens) Redeem(_ context.Context, token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, fmt.Errorf("%w: token is required", antispam.ErrTokenInvalid)
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return time.Time{}, mapJWTError(err)
	}
	if parsed.ID == "" || parsed.IssuedAt == nil || parsed.CreatedMS == 0 {
		return time.Time{}, fmt.Errorf("%w: jti, iat and created_ms are required", antispam.ErrTokenInvalid)
	}

	if err := t.consume(parsed.ID, parsed.ExpiresAt.Time); err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(parsed.CreatedMS), nil
}

// consume marks id as used and drops ledger entries that have expired.
func (t *Tokens) consume(id string, expiresAt time.Time) error {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for k, exp := range t.used {
		if !exp.After(now) {
			delete(t.used, k)
		}
	}
	if _, seen := t.used[id]; seen {
		return fmt.Errorf("%w: token already redeemed", antispam.ErrTokenInvalid)
	}
	t.used[id] = expiresAt
	return nil
}

// Outstanding returns the number of redeemed tokens still tracked.
func (t *Tokens) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.used)
}

// mapJWTError translates jwt library errors to antispam.ErrTokenInvalid.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: token is expired", antispam.ErrTokenInvalid)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: signature is invalid", antispam.ErrTokenInvalid)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: alg is invalid", antispam.ErrTokenInvalid)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: token is malformed", antispam.ErrTokenInvalid)
	default:
		return fmt.Errorf("%w: %v", antispam.ErrTokenInvalid, err)
	}
}
