package rest

import (
	"net/http"
	"strings"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionParser reads the caller's bearer token. With a secret the token must be an
// HMAC-signed JWT; without one it is forwarded to the warehouse API as is and only its
// subject claim is read.
type SessionParser struct {
	secret []byte
}

func NewSessionParser(secret string) *SessionParser {
	return &SessionParser{secret: []byte(secret)}
}

// FromRequest returns an empty session when no Authorization header is present. The
// booking flow turns that into an UNAUTHENTICATED failure.
func (p *SessionParser) FromRequest(r *http.Request) (domain.Session, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Session{}, nil
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return domain.Session{}, domain.NewUnauthenticatedError()
	}

	var claims jwt.RegisteredClaims

	if len(p.secret) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
			// opaque token
			return domain.Session{Token: token}, nil
		}
		return domain.Session{Token: token, UserID: claims.Subject}, nil
	}

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return domain.Session{}, domain.NewUnauthenticatedError()
	}

	return domain.Session{Token: token, UserID: claims.Subject}, nil
}
