package session_test

import (
	"context"
	"testing"

	"github.com/ottoman-ai/chef-chat/internal/model/chat"
	"github.com/ottoman-ai/chef-chat/internal/session"
)

func sampleSession() chat.Session {
	return chat.Session{
		Transcript: []chat.Turn{
			{Role: chat.RoleSystem, Content: "be helpful"},
			{Role: chat.RoleUser, Content: "hi"},
		},
		ReplyCount: 1,
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent session, got ok=%v err=%v", ok, err)
	}

	if err := store.Put(ctx, "s1", sampleSession()); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	got, ok, err := store.Get(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("Get err=%v ok=%v", err, ok)
	}
	if len(got.Transcript) != 2 || got.ReplyCount != 1 {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "s1"); ok {
		t.Fatal("session should be gone after delete")
	}
}

func TestMemoryStoreIsolatesTranscripts(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "s1", sampleSession()); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	got, _, _ := store.Get(ctx, "s1")
	got.Transcript[0].Content = "mutated"

	again, _, _ := store.Get(ctx, "s1")
	if again.Transcript[0].Content != "be helpful" {
		t.Fatal("stored transcript must not alias the returned slice")
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := session.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	if err := first.Put(ctx, "s1", sampleSession()); err != nil {
		t.Fatalf("Put err: %v", err)
	}

	second, err := session.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	got, ok, err := second.Get(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("Get err=%v ok=%v", err, ok)
	}
	if got.Transcript[1].Content != "hi" {
		t.Fatalf("unexpected transcript: %+v", got.Transcript)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "s1", sampleSession()); err != nil {
		t.Fatalf("Put err: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "s1"); ok {
		t.Fatal("session should be gone after delete")
	}

	// Deleting an absent session is not an error.
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("repeat Delete err: %v", err)
	}
}

func TestFileStoreAbsentSession(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}

	if _, ok, err := store.Get(context.Background(), "missing"); err != nil || ok {
		t.Fatalf("expected absent session, got ok=%v err=%v", ok, err)
	}
}
