// Package auth verifies bearer tokens issued by the identity provider.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/set-night/healthdash/internal/domain"
)

const bearerPrefix = "Bearer "

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", domain.Unauthenticated("Authorization header required")
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", domain.Unauthenticated("Invalid authorization header format")
	}
	return strings.TrimPrefix(header, bearerPrefix), nil
}

// Verifier checks every request's token against the identity provider. Nothing
// is cached between requests.
type Verifier struct {
	baseURL    string
	anonKey    string
	jwtSecret  []byte
	httpClient *http.Client
}

type Option func(*Verifier)

// WithJWTSecret switches to local HS256 validation instead of calling the provider.
func WithJWTSecret(secret string) Option {
	return func(v *Verifier) {
		if secret != "" {
			v.jwtSecret = []byte(secret)
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) { v.httpClient = c }
}

func NewVerifier(supabaseURL, anonKey string, opts ...Option) *Verifier {
	v := &Verifier{
		baseURL:    strings.TrimRight(supabaseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify returns the id of the user owning token.
func (v *Verifier) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	var (
		id  uuid.UUID
		err error
	)
	if v.jwtSecret != nil {
		id, err = v.verifyLocal(token)
	} else {
		id, err = v.verifyRemote(ctx, token)
	}
	if err != nil {
		return uuid.Nil, domain.Unauthenticated("Authentication failed: %s", err.Error())
	}
	return id, nil
}

func (v *Verifier) verifyLocal(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	if sub == "" {
		return uuid.Nil, errors.New("token has no subject")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return id, nil
}

type providerUser struct {
	ID string `json:"id"`
}

type providerError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e providerError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (v *Verifier) verifyRemote(ctx context.Context, token string) (uuid.UUID, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", v.anonKey)
	req.Header.Set("Authorization", bearerPrefix+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return uuid.Nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var perr providerError
		if json.Unmarshal(body, &perr) == nil && perr.text() != "" {
			return uuid.Nil, errors.New(perr.text())
		}
		return uuid.Nil, fmt.Errorf("identity provider returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var user providerUser
	if err := json.Unmarshal(body, &user); err != nil {
		return uuid.Nil, fmt.Errorf("parse user: %w", err)
	}
	if user.ID == "" {
		return uuid.Nil, errors.New("invalid token")
	}
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return id, nil
}
