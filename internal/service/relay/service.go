package relay

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ottoman-ai/chef-chat/internal/model/chat"
	"github.com/ottoman-ai/chef-chat/internal/service/ai"
	"github.com/ottoman-ai/chef-chat/internal/session"
)

// continueToken asks the model to pick up from its previous answer.
const continueToken = "continue"

// Service relays user messages to the completion API while keeping the
// per-session transcript current.
type Service struct {
	store     session.Store
	completer ai.Completer
}

// NewService wires the relay against a session store and completion client.
// completer may be nil when upstream credentials are not configured; every
// message then fails with a RelayError while the rest of the app still serves.
func NewService(store session.Store, completer ai.Completer) *Service {
	return &Service{store: store, completer: completer}
}

// HandleMessage appends the user's message to the session transcript, obtains
// a completion for the full conversation and returns the cleaned reply text.
// The raw completion is what gets stored, so future context is unaltered.
func (s *Service) HandleMessage(ctx context.Context, sessionID, rawText string) (string, error) {
	message := strings.TrimSpace(rawText)
	if message == "" {
		return "", &ValidationError{Reason: "Please enter a message."}
	}

	sess, _, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", &RelayError{Err: err}
	}

	if len(sess.Transcript) == 0 {
		sess.Transcript = []chat.Turn{{Role: chat.RoleSystem, Content: systemInstruction}}
		sess.ReplyCount = 0
	}

	if strings.EqualFold(message, continueToken) && len(sess.Transcript) > 1 {
		if last, ok := sess.LastTurn(); ok {
			message = "Continue from where you left off: " + last.Content
		}
	}

	sess.Transcript = append(sess.Transcript, chat.Turn{Role: chat.RoleUser, Content: message})
	// Persist before the upstream call so the user turn survives a failure.
	if err := s.store.Put(ctx, sessionID, sess); err != nil {
		return "", &RelayError{Err: err}
	}

	if s.completer == nil {
		return "", &RelayError{Err: fmt.Errorf("completion API is not configured")}
	}

	reply, err := s.completer.Complete(ctx, sess.Transcript)
	if err != nil {
		return "", &RelayError{Err: err}
	}

	sess.Transcript = append(sess.Transcript, chat.Turn{Role: chat.RoleAssistant, Content: reply})
	sess.ReplyCount++
	if err := s.store.Put(ctx, sessionID, sess); err != nil {
		return "", &RelayError{Err: err}
	}

	log.Printf("[relay] completed exchange for session=%s replies=%d", sessionID, sess.ReplyCount)
	return clean(reply), nil
}

// Reset unconditionally drops all state for the session.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// Probe bumps the diagnostic counter used to verify cookie/session plumbing.
func (s *Service) Probe(ctx context.Context, sessionID string) (int, error) {
	sess, _, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	sess.ProbeCount++
	if err := s.store.Put(ctx, sessionID, sess); err != nil {
		return 0, err
	}
	return sess.ProbeCount, nil
}
