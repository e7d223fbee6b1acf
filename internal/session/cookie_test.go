package session_test

import (
	"testing"

	"github.com/ottoman-ai/chef-chat/internal/session"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := session.NewCodec([]byte("test-secret"))
	id := codec.NewID()

	decoded, ok := codec.Decode(codec.Encode(id))
	if !ok {
		t.Fatal("expected token to verify")
	}
	if decoded != id {
		t.Fatalf("got %q, want %q", decoded, id)
	}
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	codec := session.NewCodec([]byte("test-secret"))
	token := codec.Encode(codec.NewID())

	for _, bad := range []string{
		token + "x",
		"forged-id." + token[len(token)-10:],
		"no-separator",
		"",
		".signature-only",
	} {
		if _, ok := codec.Decode(bad); ok {
			t.Fatalf("token %q should not verify", bad)
		}
	}
}

func TestCodecRejectsForeignSecret(t *testing.T) {
	token := session.NewCodec([]byte("one")).Encode("some-id")

	if _, ok := session.NewCodec([]byte("two")).Decode(token); ok {
		t.Fatal("token signed with a different secret should not verify")
	}
}
