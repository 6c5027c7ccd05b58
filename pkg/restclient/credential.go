package restclient

import (
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Credential holds the bearer token for the current session. It is an
// explicit object with a lifecycle: set at login, cleared at logout or when
// the server reports the session invalid. Nothing in this package reads the
// token from ambient process state.
type Credential struct {
	mu    sync.RWMutex
	token string
}

// NewCredential creates an empty Credential.
func NewCredential() *Credential {
	return &Credential{}
}

// Set stores the bearer token issued at login.
func (c *Credential) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Clear drops the stored token. Subsequent authenticated calls fail locally
// until Set is called again.
func (c *Credential) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the stored bearer token, or "" when none is set.
func (c *Credential) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Empty reports whether no token is currently stored.
func (c *Credential) Empty() bool {
	return c.Token() == ""
}

// Expired reports whether the stored token carries an exp claim in the past.
// The claim is decoded without verifying the signature: verification belongs
// to the server, this check only saves a doomed round trip. A token that is
// not a decodable JWT is treated as not expired and left for the server to
// judge.
func (c *Credential) Expired() bool {
	token := c.Token()
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}
