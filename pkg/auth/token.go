package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload. User tokens carry UserID, admin tokens carry
// AdminID and Role; exactly one of the ids is set.
type Claims struct {
	UserID  string `json:"userId,omitempty"`
	AdminID string `json:"adminId,omitempty"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier turns a bearer token into a Principal.
type Verifier interface {
	Verify(token string) (Principal, error)
}

// TokenIssuer signs and verifies HS256 tokens with a fixed lifetime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of the issuer that reads time from now.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	cp := *t
	cp.now = now
	return &cp
}

func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// IssueUser signs {userId, email}.
func (t *TokenIssuer) IssueUser(userID uuid.UUID, email string) (string, time.Time, error) {
	return t.sign(Claims{UserID: userID.String(), Email: email})
}

// IssueAdmin signs {adminId, email, role}.
func (t *TokenIssuer) IssueAdmin(adminID uuid.UUID, email, role string) (string, time.Time, error) {
	return t.sign(Claims{AdminID: adminID.String(), Email: email, Role: role})
}

func (t *TokenIssuer) sign(claims Claims) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry, then dispatches on payload shape.
func (t *TokenIssuer) Verify(tokenString string) (Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims.principal()
}

func (c Claims) principal() (Principal, error) {
	switch {
	case c.UserID != "" && c.AdminID == "":
		id, err := uuid.Parse(c.UserID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed userId", ErrInvalidToken)
		}
		return UserPrincipal{UserID: id, Email: c.Email}, nil

	case c.AdminID != "" && c.UserID == "":
		id, err := uuid.Parse(c.AdminID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed adminId", ErrInvalidToken)
		}
		return AdminPrincipal{AdminID: id, Email: c.Email, Role: c.Role}, nil

	default:
		return nil, fmt.Errorf("%w: unrecognised payload", ErrInvalidToken)
	}
}
