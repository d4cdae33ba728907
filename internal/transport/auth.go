package transport

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the lifetime of a request token. Tokens are minted per
// request, so a short window is enough.
const tokenTTL = 10 * time.Minute

// signer mints the short-lived HS256 bearer tokens the API expects.
// The key id travels in the header, the secret never leaves the client.
type signer struct {
	apiKey    string
	apiSecret string
	now       func() time.Time
}

func newSigner(apiKey, apiSecret string) *signer {
	return &signer{apiKey: apiKey, apiSecret: apiSecret, now: time.Now}
}

// token returns a freshly signed JWT.
func (s *signer) token() (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub": s.apiKey,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		"iss": "sdk",
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = s.apiKey

	signed, err := t.SignedString([]byte(s.apiSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
