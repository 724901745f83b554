package session

import "context"

const CookieName = "handyman_session"

// Data is what a live session carries about the authenticated user.
type Data struct {
	UserID   uint
	Username string
}

// Store keeps server-side session records keyed by an opaque session id.
// Get returns (nil, nil) when the session does not exist or has expired.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, sessionID string) (*Data, error)
	Destroy(ctx context.Context, sessionID string) error
}
