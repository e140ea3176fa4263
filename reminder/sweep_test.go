package reminder

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeCandidates struct {
	lastInteraction map[int64]time.Time
	reminded        map[int64]bool
}

func newFakeCandidates() *fakeCandidates {
	return &fakeCandidates{
		lastInteraction: make(map[int64]time.Time),
		reminded:        make(map[int64]bool),
	}
}

func (f *fakeCandidates) ForReminder(_ context.Context, cutoff time.Time) ([]int64, error) {
	var ids []int64
	for id, last := range f.lastInteraction {
		if !f.reminded[id] && last.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeCandidates) SetReminded(_ context.Context, id int64) error {
	f.reminded[id] = true
	return nil
}

type fakeSender struct {
	sent []int64
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	if text != reminderText {
		return errors.New("unexpected text")
	}
	f.sent = append(f.sent, chatID)
	return nil
}

func TestRunOnceRemindsStalledUsers(t *testing.T) {
	now := time.Now()
	store := newFakeCandidates()
	store.lastInteraction[1] = now.Add(-25 * time.Hour)
	store.lastInteraction[2] = now.Add(-time.Hour)

	sender := &fakeSender{}
	s := NewSweep(store, sender, 24*time.Hour, time.Second)

	if err := s.RunOnce(context.Background(), now); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0] != 1 {
		t.Fatalf("sent = %v, want [1]", sender.sent)
	}
	if !store.reminded[1] || store.reminded[2] {
		t.Fatalf("reminded flags = %v", store.reminded)
	}
}

func TestRunOnceIsAtMostOnce(t *testing.T) {
	now := time.Now()
	store := newFakeCandidates()
	store.lastInteraction[1] = now.Add(-48 * time.Hour)

	sender := &fakeSender{}
	s := NewSweep(store, sender, 24*time.Hour, time.Second)

	if err := s.RunOnce(context.Background(), now); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if err := s.RunOnce(context.Background(), now); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d reminders, want 1", len(sender.sent))
	}
}

func TestSendFailureStillFlags(t *testing.T) {
	now := time.Now()
	store := newFakeCandidates()
	store.lastInteraction[1] = now.Add(-30 * time.Hour)

	sender := &fakeSender{err: errors.New("blocked by user")}
	s := NewSweep(store, sender, 24*time.Hour, time.Second)

	if err := s.RunOnce(context.Background(), now); err != nil {
		t.Fatalf("run once: %v", err)
	}
	if !store.reminded[1] {
		t.Fatal("delivery failure must still mark the user reminded")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store := newFakeCandidates()
	s := NewSweep(store, &fakeSender{}, 24*time.Hour, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop on context cancel")
	}
}
