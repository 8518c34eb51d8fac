package csrf

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

// Errors.
var (
	ErrKeyTooShort    = errors.New("csrf: secret key must be 32+ bytes")
	ErrNilStore       = errors.New("csrf: secret store required")
	ErrMalformedToken = errors.New("csrf: malformed token")
	ErrNotFound       = errors.New("csrf: secret not found")
)

// domain separates CSRF secrets from any other HMAC use of the same key.
const domain = "formkit.csrf\x00"

// Service issues, masks and verifies anti-forgery tokens. The signing
// key is fixed at construction and read-only afterwards, so a Service
// is safe for concurrent use.
type Service struct {
	key   []byte
	store SecretStore
}

// New creates a Service with the given process-wide secret key and
// session-backed secret store. The key must be at least 32 bytes.
func New(secretKey string, store SecretStore) (*Service, error) {
	if len(secretKey) < 32 {
		return nil, ErrKeyTooShort
	}
	if store == nil {
		return nil, ErrNilStore
	}
	return &Service{key: []byte(secretKey), store: store}, nil
}

// Issue returns the CSRF secret for a session, deriving and persisting
// it on first use. The derivation is a keyed hash over the session
// identifier, so re-issuing for the same session always yields the
// same secret.
func (s *Service) Issue(ctx context.Context, sessionID string) ([]byte, error) {
	if secret, err := s.store.Get(ctx, sessionID); err == nil && len(secret) > 0 {
		return secret, nil
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	secret := s.derive(sessionID)
	if err := s.store.Set(ctx, sessionID, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

func (s *Service) derive(sessionID string) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(domain))
	mac.Write([]byte(sessionID))
	return mac.Sum(nil)
}

// Mask returns the transmitted form of a secret: a fresh random pad of
// equal length, followed by the XOR of pad and secret, base64 encoded.
// Every call produces different bytes for the same secret, so a
// compression-oracle attacker cannot correlate token bytes across
// responses.
func (s *Service) Mask(secret []byte) string {
	return Mask(secret)
}

// Unmask recovers a secret from its transmitted form. It returns
// ErrMalformedToken for anything that is not a well-formed mask:
// bad encoding, odd length or empty input.
func (s *Service) Unmask(masked string) ([]byte, error) {
	return Unmask(masked)
}

// Verify unmasks a request token and compares it to the session secret
// in constant time. Malformed tokens simply fail verification.
func (s *Service) Verify(requestToken string, secret []byte) bool {
	recovered, err := Unmask(requestToken)
	if err != nil {
		return false
	}
	return hmac.Equal(recovered, secret)
}

// Mask is the package-level masking primitive; see Service.Mask.
func Mask(secret []byte) string {
	if len(secret) == 0 {
		return ""
	}
	pad := make([]byte, len(secret))
	if _, err := io.ReadFull(rand.Reader, pad); err != nil {
		// crypto/rand failure means the process cannot do anything
		// security-relevant; treat it like any other broken invariant.
		panic("csrf: crypto/rand unavailable: " + err.Error())
	}
	out := make([]byte, 0, len(secret)*2)
	out = append(out, pad...)
	for i, b := range secret {
		out = append(out, b^pad[i])
	}
	return base64.StdEncoding.EncodeToString(out)
}

// Unmask is the package-level unmasking primitive; see Service.Unmask.
func Unmask(masked string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(masked)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if len(decoded) == 0 || len(decoded)%2 != 0 {
		return nil, ErrMalformedToken
	}
	half := len(decoded) / 2
	pad, body := decoded[:half], decoded[half:]
	secret := make([]byte, half)
	for i := range secret {
		secret[i] = body[i] ^ pad[i]
	}
	return secret, nil
}
