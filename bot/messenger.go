package bot

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/funnelbot/core/logger"
)

// ctxMessenger delivers into the chat of the update being handled.
// Edit swallows 400 responses: stale callbacks routinely target
// messages that are already edited or gone.
type ctxMessenger struct {
	c tele.Context
}

func (m ctxMessenger) Send(_ context.Context, text string, kb *tele.ReplyMarkup) error {
	if kb != nil {
		return m.c.Send(text, kb)
	}
	return m.c.Send(text)
}

func (m ctxMessenger) Edit(ctx context.Context, text string, kb *tele.ReplyMarkup) error {
	var err error
	if kb != nil {
		err = m.c.Edit(text, kb)
	} else {
		err = m.c.Edit(text)
	}
	return swallowBadRequest(ctx, err)
}

func (m ctxMessenger) Alert(_ context.Context, text string) error {
	return m.c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

func (m ctxMessenger) Toast(_ context.Context, text string) error {
	return m.c.Respond(&tele.CallbackResponse{Text: text})
}

func (m ctxMessenger) SendVideo(_ context.Context, fileID, caption string) error {
	return m.c.Send(&tele.Video{File: tele.File{FileID: fileID}, Caption: caption})
}

// adminMessenger renders operator output. The user list marks ids up
// as <code>, so text goes out in HTML mode.
type adminMessenger struct {
	c tele.Context
}

func (m adminMessenger) Send(_ context.Context, text string, kb *tele.ReplyMarkup) error {
	if kb != nil {
		return m.c.Send(text, kb, tele.ModeHTML)
	}
	return m.c.Send(text)
}

func (m adminMessenger) Edit(ctx context.Context, text string, kb *tele.ReplyMarkup) error {
	var err error
	if kb != nil {
		err = m.c.Edit(text, kb, tele.ModeHTML)
	} else {
		err = m.c.Edit(text, tele.ModeHTML)
	}
	return swallowBadRequest(ctx, err)
}

func (m adminMessenger) SendDocument(_ context.Context, filename string, content []byte) error {
	doc := &tele.Document{File: tele.FromReader(bytes.NewReader(content)), FileName: filename}
	return m.c.Send(doc)
}

// Notifier sends to arbitrary chats outside an update's scope. The
// underlying bot appears only once RunTelegram has built it.
type Notifier struct {
	bot *tele.Bot
}

func (n *Notifier) SetBot(b *tele.Bot) {
	n.bot = b
}

func (n *Notifier) SendMessage(_ context.Context, chatID int64, text string) error {
	if n.bot == nil {
		return errors.New("bot not started")
	}
	_, err := n.bot.Send(tele.ChatID(chatID), text)
	return err
}

func (n *Notifier) SendDocument(_ context.Context, chatID int64, filename, caption string, content []byte) error {
	if n.bot == nil {
		return errors.New("bot not started")
	}
	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(content)),
		FileName: filename,
		Caption:  caption,
	}
	_, err := n.bot.Send(tele.ChatID(chatID), doc)
	return err
}

func swallowBadRequest(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var te *tele.Error
	if errors.As(err, &te) && te.Code == 400 {
		logger.Debug(ctx, logger.TG, "tg.edit_skipped", slog.String("reason", te.Description))
		return nil
	}
	return err
}
