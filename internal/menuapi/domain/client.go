package domain

import "time"

// Client is an API consumer with an identifier/secret credential pair.
// Immutable after creation except for IsActive, which is flipped by
// administrative action only.
type Client struct {
	ID        string // internal row id (ULID)
	ClientID  string // public identifier ("CL_" + 12 chars), unique
	KeyHash   string // bcrypt hash of the client key; never the plaintext
	Email     string // unique
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
