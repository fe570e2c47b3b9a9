package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/weeklog/pkg/entry"
	"tableflip.dev/weeklog/pkg/key"
)

func TestWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	p := mustLoad(t, base)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	k := activityKey(t, 0, 2, 10)
	if err := p.PutActivity(k, entry.New("hello", 0, 0, "")); err != nil {
		t.Fatalf("put: %v", err)
	}
	mk, _ := key.NewMood(0, 2)
	if err := p.PutMood(mk, 6); err != nil {
		t.Fatalf("put mood: %v", err)
	}

	seen := make(map[Document]bool)
	deadline := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case evt := <-ch:
			seen[evt.Doc] = true
		case <-deadline:
			t.Fatalf("timed out; saw %v", seen)
		}
	}
}
