package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/ticket/repository/file"
)

func TestStoreAssignsSequentialNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.jsonl")

	store, err := file.New(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	for want := 1; want <= 3; want++ {
		tk, err := store.Append(ctx, model.Ticket{SessionID: "s1"})
		if err != nil {
			t.Fatal(err)
		}
		if tk.Number != want {
			t.Errorf("ticket number = %d, want %d", tk.Number, want)
		}
	}
}

func TestStoreResumesNumberingAfterRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.jsonl")
	ctx := context.Background()

	store, err := file.New(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Append(ctx, model.Ticket{}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Append(ctx, model.Ticket{}); err != nil {
		t.Fatal(err)
	}

	// Reopen: numbering must continue, never reuse.
	store2, err := file.New(path)
	if err != nil {
		t.Fatal(err)
	}
	tk, err := store2.Append(ctx, model.Ticket{})
	if err != nil {
		t.Fatal(err)
	}
	if tk.Number != 3 {
		t.Errorf("ticket number after restart = %d, want 3", tk.Number)
	}
}

func TestStoreSkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.jsonl")

	content := `{"number":5,"session_id":"s1"}` + "\n" + "not json at all\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := file.New(path)
	if err != nil {
		t.Fatal(err)
	}
	tk, err := store.Append(context.Background(), model.Ticket{})
	if err != nil {
		t.Fatal(err)
	}
	if tk.Number != 6 {
		t.Errorf("ticket number = %d, want 6 (resume past corrupt line)", tk.Number)
	}
}
