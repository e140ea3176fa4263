package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m3rciful/funnelbot/storage"
)

type fakeUsers struct {
	user *storage.User
	err  error
}

func (f fakeUsers) Get(context.Context, int64) (*storage.User, error) {
	return f.user, f.err
}

type fakeLogs struct {
	entries []storage.LogEntry
}

func (f fakeLogs) ByUser(context.Context, int64) ([]storage.LogEntry, error) {
	return f.entries, nil
}

type delivery struct {
	chatID   int64
	filename string
	caption  string
	content  string
}

type fakeDocSender struct {
	deliveries []delivery
	failFor    map[int64]bool
}

func (f *fakeDocSender) SendDocument(_ context.Context, chatID int64, filename, caption string, content []byte) error {
	if f.failFor[chatID] {
		return errors.New("forbidden: bot was blocked")
	}
	f.deliveries = append(f.deliveries, delivery{chatID, filename, caption, string(content)})
	return nil
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRender(t *testing.T) {
	entries := []storage.LogEntry{
		{EventType: "Пользователь", Content: "Запустил бота /start", Timestamp: ts("2026-08-01 10:00:00")},
		{EventType: "Выбор сферы", Content: "Деньги", Timestamp: ts("2026-08-01 10:00:05")},
	}
	got := Render(42, "someone", "Имя", entries)

	want := "Пользователь завершил воронку:\nID: 42\nName: Имя\nUsername: @someone\n\nИстория ответов:\n" +
		"[2026-08-01 10:00:00] Пользователь: Запустил бота /start\n" +
		"[2026-08-01 10:00:05] Выбор сферы: Деньги\n"
	if got != want {
		t.Fatalf("render mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestTranscriptLineCount(t *testing.T) {
	entries := make([]storage.LogEntry, 7)
	for i := range entries {
		entries[i] = storage.LogEntry{EventType: "Бот", Content: "x", Timestamp: ts("2026-08-01 10:00:00")}
	}
	got := Transcript(entries)
	if n := strings.Count(got, "\n"); n != len(entries) {
		t.Fatalf("transcript has %d lines, want %d", n, len(entries))
	}
}

func TestDeliverFansOutToAllOperators(t *testing.T) {
	sender := &fakeDocSender{}
	r := New(
		fakeUsers{user: &storage.User{ID: 42, Username: "someone", FirstName: "Имя"}},
		fakeLogs{entries: []storage.LogEntry{{EventType: "Финал", Content: "Нажал: Хочу в группу", Timestamp: ts("2026-08-01 11:00:00")}}},
		sender,
		[]int64{100, 200},
	)

	if err := r.Deliver(context.Background(), 42); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if len(sender.deliveries) != 2 {
		t.Fatalf("deliveries = %d, want 2", len(sender.deliveries))
	}
	first := sender.deliveries[0]
	if first.filename != "report_42.txt" {
		t.Fatalf("filename = %q", first.filename)
	}
	if first.caption != "Отчет по пользователю Имя (@someone)" {
		t.Fatalf("caption = %q", first.caption)
	}
	if !strings.Contains(first.content, "ID: 42") {
		t.Fatalf("content = %q", first.content)
	}
}

func TestDeliverSurvivesBlockedOperator(t *testing.T) {
	sender := &fakeDocSender{failFor: map[int64]bool{100: true}}
	r := New(
		fakeUsers{user: &storage.User{ID: 42}},
		fakeLogs{},
		sender,
		[]int64{100, 200},
	)

	if err := r.Deliver(context.Background(), 42); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if len(sender.deliveries) != 1 || sender.deliveries[0].chatID != 200 {
		t.Fatalf("deliveries = %+v, want only operator 200", sender.deliveries)
	}
}

func TestDeliverUnknownUser(t *testing.T) {
	sender := &fakeDocSender{}
	r := New(fakeUsers{user: nil}, fakeLogs{}, sender, []int64{100})

	if err := r.Deliver(context.Background(), 7); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if got := sender.deliveries[0].content; !strings.Contains(got, "Name: Unknown") || !strings.Contains(got, "Username: @Unknown") {
		t.Fatalf("content = %q", got)
	}
}
