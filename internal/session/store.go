package session

import (
	"context"

	"github.com/ottoman-ai/chef-chat/internal/model/chat"
)

// Store abstracts session persistence (in-memory map, filesystem, etc.).
// Writes from concurrent requests for the same id are not serialized;
// the last writer wins.
type Store interface {
	// Get loads a session. The boolean reports whether the session exists;
	// an absent session is not an error.
	Get(ctx context.Context, id string) (chat.Session, bool, error)
	Put(ctx context.Context, id string, sess chat.Session) error
	Delete(ctx context.Context, id string) error
}
