package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/ticket/repository"
)

// Store is the append-only JSONL ticket store: one ticket per line,
// sequential numbers assigned under a mutex. Numbering resumes from the
// highest number already on disk so restarts never reuse a ticket number.
type Store struct {
	mu   sync.Mutex
	path string
	next int
}

var _ repository.TicketRepository = (*Store)(nil)

// New opens (or creates) the ticket file and scans it to find the next
// ticket number.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create ticket dir: %w", err)
		}
	}

	next, err := scanNextNumber(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: path, next: next}, nil
}

func scanNextNumber(path string) (int, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open ticket file: %w", err)
	}
	defer f.Close()

	highest := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var t model.Ticket
		if err := json.Unmarshal(scanner.Bytes(), &t); err != nil {
			// Corrupt line: skip it, numbering still moves past intact records.
			continue
		}
		if t.Number > highest {
			highest = t.Number
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan ticket file: %w", err)
	}

	return highest + 1, nil
}

// Append stamps the ticket with the next sequential number and writes it
// as one JSON line.
func (s *Store) Append(_ context.Context, t model.Ticket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Number = s.next

	data, err := json.Marshal(t)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("%w: %v", repository.ErrAppendFailed, err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("%w: %v", repository.ErrAppendFailed, err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return model.Ticket{}, fmt.Errorf("%w: %v", repository.ErrAppendFailed, err)
	}

	s.next++
	return t, nil
}
