package bot

import (
	"context"
	"errors"

	tele "gopkg.in/telebot.v4"
)

// ChannelMembership checks channel subscription through the Bot API.
// The bot handle is injected on startup.
type ChannelMembership struct {
	bot    *tele.Bot
	chatID int64
}

func NewChannelMembership(chatID int64) *ChannelMembership {
	return &ChannelMembership{chatID: chatID}
}

func (c *ChannelMembership) SetBot(b *tele.Bot) {
	c.bot = b
}

// IsMember reports whether the user belongs to the channel. Creator
// and administrator count as members.
func (c *ChannelMembership) IsMember(_ context.Context, userID int64) (bool, error) {
	if c.bot == nil {
		return false, errors.New("bot not started")
	}
	member, err := c.bot.ChatMemberOf(tele.ChatID(c.chatID), &tele.User{ID: userID})
	if err != nil {
		return false, err
	}
	switch member.Role {
	case tele.Member, tele.Administrator, tele.Creator:
		return true, nil
	}
	return false, nil
}
