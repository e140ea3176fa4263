package admin

import (
	"context"
	"strings"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/funnelbot/funnel"
	"github.com/m3rciful/funnelbot/storage"
)

type fakePager struct {
	users []storage.User
	total int
}

func (f fakePager) Page(_ context.Context, page, size int) ([]storage.User, error) {
	start := page * size
	if start >= len(f.users) {
		return nil, nil
	}
	end := start + size
	if end > len(f.users) {
		end = len(f.users)
	}
	return f.users[start:end], nil
}

func (f fakePager) Count(context.Context) (int, error) {
	return f.total, nil
}

type fakeLogs struct {
	entries map[int64][]storage.LogEntry
}

func (f fakeLogs) ByUser(_ context.Context, userID int64) ([]storage.LogEntry, error) {
	return f.entries[userID], nil
}

type recorded struct {
	kind     string // "send", "edit", "document"
	text     string
	filename string
	content  string
	kb       *tele.ReplyMarkup
}

type fakeMessenger struct {
	out []recorded
}

func (m *fakeMessenger) Send(_ context.Context, text string, kb *tele.ReplyMarkup) error {
	m.out = append(m.out, recorded{kind: "send", text: text, kb: kb})
	return nil
}

func (m *fakeMessenger) Edit(_ context.Context, text string, kb *tele.ReplyMarkup) error {
	m.out = append(m.out, recorded{kind: "edit", text: text, kb: kb})
	return nil
}

func (m *fakeMessenger) SendDocument(_ context.Context, filename string, content []byte) error {
	m.out = append(m.out, recorded{kind: "document", filename: filename, content: string(content)})
	return nil
}

func (m *fakeMessenger) last() recorded {
	if len(m.out) == 0 {
		return recorded{}
	}
	return m.out[len(m.out)-1]
}

func someUsers(n int) []storage.User {
	joined := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	users := make([]storage.User, n)
	for i := range users {
		users[i] = storage.User{
			ID:        int64(i + 1),
			Username:  "user",
			FirstName: "Name",
			JoinedAt:  joined,
		}
	}
	return users
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, want int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}
	for _, c := range cases {
		if got := totalPages(c.total); got != c.want {
			t.Fatalf("totalPages(%d) = %d, want %d", c.total, got, c.want)
		}
	}
}

func TestPageText(t *testing.T) {
	users := []storage.User{
		{ID: 5, Username: "someone", FirstName: "Имя", JoinedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
		{ID: 6, FirstName: "Другой", JoinedAt: time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)},
	}
	got := pageText(0, 2, users)

	if !strings.HasPrefix(got, "Всего пользователей: 2. Страница 1/1\n\n") {
		t.Fatalf("header = %q", got)
	}
	if !strings.Contains(got, "ID: <code>5</code> | Имя (@someone) | 2026-08-01 12:00:00\n") {
		t.Fatalf("missing row with username: %q", got)
	}
	if !strings.Contains(got, "ID: <code>6</code> | Другой | 2026-08-02 09:30:00\n") {
		t.Fatalf("missing row without username: %q", got)
	}
}

func TestPageKeyboardNavigation(t *testing.T) {
	uniques := func(kb *tele.ReplyMarkup) []string {
		var out []string
		for _, row := range kb.InlineKeyboard {
			for _, b := range row {
				out = append(out, b.Unique)
			}
		}
		return out
	}

	first := uniques(pageKeyboard(0, 3))
	if len(first) != 2 || first[0] != "adm_page" || first[1] != "adm_search_id" {
		t.Fatalf("first page buttons = %v", first)
	}
	middle := uniques(pageKeyboard(1, 3))
	if len(middle) != 3 {
		t.Fatalf("middle page buttons = %v", middle)
	}
	last := uniques(pageKeyboard(2, 3))
	if len(last) != 2 || last[0] != "adm_page" {
		t.Fatalf("last page buttons = %v", last)
	}
	single := uniques(pageKeyboard(0, 1))
	if len(single) != 1 || single[0] != "adm_search_id" {
		t.Fatalf("single page buttons = %v", single)
	}
}

func TestConvSendsFirstPage(t *testing.T) {
	h := NewHandler(fakePager{users: someUsers(12), total: 12}, fakeLogs{}, funnel.NewSessions())
	msg := &fakeMessenger{}

	if err := h.Conv(context.Background(), msg); err != nil {
		t.Fatalf("conv: %v", err)
	}
	got := msg.last()
	if got.kind != "send" {
		t.Fatalf("conv output kind = %q, want send", got.kind)
	}
	if !strings.Contains(got.text, "Всего пользователей: 12. Страница 1/2") {
		t.Fatalf("conv text = %q", got.text)
	}
}

func TestPageEditsInPlace(t *testing.T) {
	h := NewHandler(fakePager{users: someUsers(12), total: 12}, fakeLogs{}, funnel.NewSessions())
	msg := &fakeMessenger{}

	if err := h.Page(context.Background(), 1, msg); err != nil {
		t.Fatalf("page: %v", err)
	}
	got := msg.last()
	if got.kind != "edit" {
		t.Fatalf("page output kind = %q, want edit", got.kind)
	}
	if !strings.Contains(got.text, "Страница 2/2") {
		t.Fatalf("page text = %q", got.text)
	}
}

func TestAskIDEntersSubState(t *testing.T) {
	sessions := funnel.NewSessions()
	h := NewHandler(fakePager{}, fakeLogs{}, sessions)
	msg := &fakeMessenger{}

	if err := h.AskID(context.Background(), 100, msg); err != nil {
		t.Fatalf("ask id: %v", err)
	}
	if !h.Entering(100) {
		t.Fatal("operator should be in the entering-id sub-state")
	}
	if got := msg.last().text; got != "Введите ID пользователя для просмотра логов:" {
		t.Fatalf("prompt = %q", got)
	}
}

func TestHandleTextInvalidID(t *testing.T) {
	sessions := funnel.NewSessions()
	h := NewHandler(fakePager{}, fakeLogs{}, sessions)
	sessions.SetState(100, StateEnteringID)
	msg := &fakeMessenger{}

	if err := h.HandleText(context.Background(), 100, "not a number", msg); err != nil {
		t.Fatalf("handle text: %v", err)
	}
	if got := msg.last().text; got != "Некорректный ID." {
		t.Fatalf("reply = %q", got)
	}
	if h.Entering(100) {
		t.Fatal("sub-state must be cleared after invalid input")
	}
}

func TestHandleTextNoLogs(t *testing.T) {
	sessions := funnel.NewSessions()
	h := NewHandler(fakePager{}, fakeLogs{entries: map[int64][]storage.LogEntry{}}, sessions)
	sessions.SetState(100, StateEnteringID)
	msg := &fakeMessenger{}

	if err := h.HandleText(context.Background(), 100, "42", msg); err != nil {
		t.Fatalf("handle text: %v", err)
	}
	if got := msg.last().text; got != "Логов по этому пользователю нет." {
		t.Fatalf("reply = %q", got)
	}
}

func TestHandleTextExportsLogFile(t *testing.T) {
	sessions := funnel.NewSessions()
	logs := fakeLogs{entries: map[int64][]storage.LogEntry{
		42: {
			{EventType: "Пользователь", Content: "Запустил бота /start", Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		},
	}}
	h := NewHandler(fakePager{}, logs, sessions)
	sessions.SetState(100, StateEnteringID)
	msg := &fakeMessenger{}

	if err := h.HandleText(context.Background(), 100, " 42 ", msg); err != nil {
		t.Fatalf("handle text: %v", err)
	}
	got := msg.last()
	if got.kind != "document" || got.filename != "log_42.txt" {
		t.Fatalf("output = %+v", got)
	}
	if !strings.HasPrefix(got.content, "История диалога с 42:\n\n") {
		t.Fatalf("content = %q", got.content)
	}
	if !strings.Contains(got.content, "[2026-08-01 10:00:00] Пользователь: Запустил бота /start") {
		t.Fatalf("content = %q", got.content)
	}
	if h.Entering(100) {
		t.Fatal("sub-state must be cleared after export")
	}
}
