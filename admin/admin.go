// Package admin implements the operator query surface: the paginated
// user list and per-user transcript export behind /conv.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/funnelbot/core/logger"

	"github.com/m3rciful/funnelbot/core/telegram/keyboard"
	"github.com/m3rciful/funnelbot/funnel"
	"github.com/m3rciful/funnelbot/report"
	"github.com/m3rciful/funnelbot/storage"
)

// StateEnteringID marks an operator who was asked to type a user id.
const StateEnteringID funnel.State = "admin_entering_id"

const pageSize = 10

const dateLayout = "2006-01-02 15:04:05"

// UserPager lists registry rows for the user list.
type UserPager interface {
	Page(ctx context.Context, page, size int) ([]storage.User, error)
	Count(ctx context.Context) (int, error)
}

// LogReader reads one user's transcript.
type LogReader interface {
	ByUser(ctx context.Context, userID int64) ([]storage.LogEntry, error)
}

// Messenger is the operator-facing delivery surface. Text output is
// rendered as HTML because the user list marks ids up as code.
type Messenger interface {
	Send(ctx context.Context, text string, kb *tele.ReplyMarkup) error
	Edit(ctx context.Context, text string, kb *tele.ReplyMarkup) error
	SendDocument(ctx context.Context, filename string, content []byte) error
}

// Handler serves operator queries.
type Handler struct {
	users    UserPager
	logs     LogReader
	sessions *funnel.Sessions
}

func NewHandler(users UserPager, logs LogReader, sessions *funnel.Sessions) *Handler {
	return &Handler{users: users, logs: logs, sessions: sessions}
}

// Conv handles the /conv command: sends the first page of the user
// list as a new message.
func (h *Handler) Conv(ctx context.Context, msg Messenger) error {
	return h.showPage(ctx, 0, msg.Send)
}

// Page handles pagination callbacks: edits the list in place.
func (h *Handler) Page(ctx context.Context, page int, msg Messenger) error {
	if page < 0 {
		page = 0
	}
	return h.showPage(ctx, page, msg.Edit)
}

func (h *Handler) showPage(ctx context.Context, page int, deliver func(context.Context, string, *tele.ReplyMarkup) error) error {
	users, err := h.users.Page(ctx, page, pageSize)
	if err != nil {
		return err
	}
	total, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	logger.Debug(ctx, logger.ADM, "admin.page_viewed",
		slog.Int("page", page), slog.Int("total", total))
	return deliver(ctx, pageText(page, total, users), pageKeyboard(page, totalPages(total)))
}

// AskID handles the search button: puts the operator into the id entry
// sub-state and prompts for input.
func (h *Handler) AskID(ctx context.Context, operatorID int64, msg Messenger) error {
	h.sessions.SetState(operatorID, StateEnteringID)
	return msg.Send(ctx, "Введите ID пользователя для просмотра логов:", nil)
}

// HandleText consumes the typed user id and replies with the log file.
// The sub-state is cleared no matter how parsing goes.
func (h *Handler) HandleText(ctx context.Context, operatorID int64, text string, msg Messenger) error {
	defer h.sessions.Clear(operatorID)

	targetID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		logger.Debug(ctx, logger.ADM, "admin.lookup_rejected",
			slog.Int64("operator_id", operatorID))
		return msg.Send(ctx, "Некорректный ID.", nil)
	}
	entries, err := h.logs.ByUser(ctx, targetID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return msg.Send(ctx, "Логов по этому пользователю нет.", nil)
	}

	logger.Info(ctx, logger.ADM, "admin.log_exported",
		slog.Int64("operator_id", operatorID),
		slog.Int64("user_id", targetID),
		slog.Int("entries", len(entries)))
	content := fmt.Sprintf("История диалога с %d:\n\n%s", targetID, report.Transcript(entries))
	return msg.SendDocument(ctx, fmt.Sprintf("log_%d.txt", targetID), []byte(content))
}

// Entering reports whether the operator currently owes us a user id.
func (h *Handler) Entering(operatorID int64) bool {
	return h.sessions.State(operatorID) == StateEnteringID
}

func totalPages(total int) int {
	return (total + pageSize - 1) / pageSize
}

func pageText(page, total int, users []storage.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Всего пользователей: %d. Страница %d/%d\n\n", total, page+1, totalPages(total))
	for _, u := range users {
		display := u.FirstName
		if u.Username != "" {
			display = fmt.Sprintf("%s (@%s)", u.FirstName, u.Username)
		}
		fmt.Fprintf(&b, "ID: <code>%d</code> | %s | %s\n", u.ID, display, u.JoinedAt.Format(dateLayout))
	}
	return b.String()
}

func pageKeyboard(page, pages int) *tele.ReplyMarkup {
	var nav []keyboard.InlineBtn
	if page > 0 {
		nav = append(nav, keyboard.InlineBtn{Text: "⬅️", Unique: "adm_page", Data: strconv.Itoa(page - 1)})
	}
	if page < pages-1 {
		nav = append(nav, keyboard.InlineBtn{Text: "➡️", Unique: "adm_page", Data: strconv.Itoa(page + 1)})
	}
	rows := make([][]keyboard.InlineBtn, 0, 2)
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔎 Найти по ID", Unique: "adm_search_id"}})
	return keyboard.InlineButtonsRows(rows...)
}
