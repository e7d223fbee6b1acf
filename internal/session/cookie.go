package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// Codec signs session identifiers so clients cannot forge them. The token
// handed to the browser is "<id>.<base64url(hmac-sha256(id))>"; the raw id
// never leaves the server unsigned.
type Codec struct {
	secret []byte
}

// NewCodec returns a codec signing with the given secret.
func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// NewID mints a fresh session identifier.
func (c *Codec) NewID() string {
	return uuid.NewString()
}

// Encode produces the signed token handed to the client.
func (c *Codec) Encode(id string) string {
	return id + "." + c.sign(id)
}

// Decode verifies a client token and returns the embedded session id.
func (c *Codec) Decode(token string) (string, bool) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(id))) {
		return "", false
	}
	return id, true
}

func (c *Codec) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
