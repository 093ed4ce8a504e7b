package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestHistoryRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	h, err := OpenHistory(ctx, filepath.Join(t.TempDir(), "journal.sqlite"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	defer h.Close()

	if err := h.Record(ctx, ActionComplete, "buy milk"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := h.Record(ctx, ActionReopen, "buy milk"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := h.Record(ctx, ActionCopy, "water plants"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := h.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2): expected 2 entries, got %d", len(got))
	}
	// Newest first.
	if got[0].Action != ActionCopy || got[0].Item != "water plants" {
		t.Fatalf("entry 0: expected copy/water plants, got %s/%s", got[0].Action, got[0].Item)
	}
	if got[1].Action != ActionReopen {
		t.Fatalf("entry 1: expected reopen, got %s", got[1].Action)
	}
	if got[0].TS.IsZero() {
		t.Fatalf("expected a timestamp on journal entries")
	}
}

func TestHistoryReopenExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.sqlite")

	h, err := OpenHistory(ctx, path)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	if err := h.Record(ctx, ActionComplete, "a"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	h2, err := OpenHistory(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer h2.Close()
	got, err := h2.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].Item != "a" {
		t.Fatalf("expected the earlier entry to survive reopen, got %v", got)
	}
}
