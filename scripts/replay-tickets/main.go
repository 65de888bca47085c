// Command replay-tickets re-publishes tickets from the JSONL ticket file to
// the kitchen bus. Useful after a kitchen display outage: cut tickets are
// still on disk even when the publish at commit time failed.
//
// Usage:
//
//	go run scripts/replay-tickets/main.go -file ./data/tickets.jsonl -since 42
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"restaurant-order-agent/internal/model"
	"restaurant-order-agent/internal/ticket"
	"restaurant-order-agent/pkg/kitchen"
)

func main() {
	var (
		file      = flag.String("file", "./data/tickets.jsonl", "ticket file to replay")
		natsURL   = flag.String("nats", "nats://localhost:4222", "NATS server URL")
		subject   = flag.String("subject", "kitchen.tickets", "kitchen subject")
		storeName = flag.String("store", "", "store name printed on the ticket")
		since     = flag.Int("since", 0, "replay tickets with number greater than this")
	)
	flag.Parse()

	if err := run(*file, *natsURL, *subject, *storeName, *since); err != nil {
		fmt.Fprintln(os.Stderr, "replay failed:", err)
		os.Exit(1)
	}
}

func run(path, natsURL, subject, storeName string, since int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open ticket file: %w", err)
	}
	defer f.Close()

	pub, err := kitchen.New(kitchen.Config{
		URL:     natsURL,
		Subject: subject,
		Name:    "replay-tickets",
	})
	if err != nil {
		return fmt.Errorf("connect kitchen bus: %w", err)
	}
	defer pub.Close()

	notifier := ticket.NewNATSNotifier(pub)

	replayed, skipped := 0, 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var t model.Ticket
		if err := json.Unmarshal(scanner.Bytes(), &t); err != nil {
			skipped++
			continue
		}
		if t.Number <= since {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := notifier.PublishTicket(ctx, t, ticket.Format(t, storeName))
		cancel()
		if err != nil {
			return fmt.Errorf("publish ticket #%d: %w", t.Number, err)
		}
		replayed++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan ticket file: %w", err)
	}

	fmt.Printf("replayed %d tickets (%d corrupt lines skipped)\n", replayed, skipped)
	return nil
}
