package transport

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/cactus-tim/ml-project/internal/survey"
)

func TestPumpPreservesPerUserOrder(t *testing.T) {
	var mu sync.Mutex
	seen := map[int64][]string{}

	handle := func(in survey.Inbound) []survey.Reply {
		mu.Lock()
		seen[in.UserID] = append(seen[in.UserID], in.Text)
		mu.Unlock()
		return nil
	}
	p := NewPump(4, handle, func(int64, []survey.Reply) {})

	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	const perUser = 200
	users := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < perUser; i++ {
		for _, u := range users {
			if err := p.Dispatch(context.Background(), survey.Inbound{
				UserID: u,
				Text:   fmt.Sprintf("msg-%d", i),
			}); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
		}
	}
	p.Close()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, u := range users {
		msgs := seen[u]
		if len(msgs) != perUser {
			t.Fatalf("user %d: got %d messages, want %d", u, len(msgs), perUser)
		}
		for i, text := range msgs {
			if want := fmt.Sprintf("msg-%d", i); text != want {
				t.Fatalf("user %d: position %d is %q, want %q", u, i, text, want)
			}
		}
	}
}

func TestPumpSendsHandlerReplies(t *testing.T) {
	var mu sync.Mutex
	var sent []string

	handle := func(in survey.Inbound) []survey.Reply {
		return []survey.Reply{{Text: "echo:" + in.Text}}
	}
	send := func(userID int64, replies []survey.Reply) {
		mu.Lock()
		for _, r := range replies {
			sent = append(sent, fmt.Sprintf("%d/%s", userID, r.Text))
		}
		mu.Unlock()
	}

	p := NewPump(2, handle, send)
	done := make(chan error, 1)
	go func() { done <- p.Run(context.Background()) }()

	if err := p.Dispatch(context.Background(), survey.Inbound{UserID: 9, Text: "hi"}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	p.Close()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sent) != 1 || sent[0] != "9/echo:hi" {
		t.Fatalf("sent = %v", sent)
	}
}

func TestDispatchStopsOnCancelledContext(t *testing.T) {
	// One worker, full queue, no Run draining it.
	p := NewPump(1, func(survey.Inbound) []survey.Reply { return nil }, func(int64, []survey.Reply) {})
	ctx, cancel := context.WithCancel(context.Background())

	for {
		select {
		case p.queues[0] <- survey.Inbound{}:
			continue
		default:
		}
		break
	}

	cancel()
	if err := p.Dispatch(ctx, survey.Inbound{UserID: 1}); err == nil {
		t.Fatal("expected context error on full queue")
	}
}
