package bot

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// replySink delivers pipeline output as HTML replies. If Telegram
// rejects the markup the chunk is resent as plain text so the content
// still reaches the user.
type replySink struct {
	app     *App
	chatID  int64
	replyTo int
}

func (s *replySink) Send(ctx context.Context, text string) error {
	params := tu.Message(tu.ID(s.chatID), text).
		WithParseMode(telego.ModeHTML).
		WithReplyParameters(&telego.ReplyParameters{MessageID: s.replyTo})

	if _, err := s.app.bot.SendMessage(ctx, params); err != nil {
		s.app.logger.Warn(ctx, "HTML send to chat %d failed, retrying as plain text: %v", s.chatID, err)
		plain := tu.Message(tu.ID(s.chatID), text).
			WithReplyParameters(&telego.ReplyParameters{MessageID: s.replyTo})
		if _, err := s.app.bot.SendMessage(ctx, plain); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) reply(ctx context.Context, msg *telego.Message, text string) {
	params := tu.Message(tu.ID(msg.Chat.ID), text).
		WithReplyParameters(&telego.ReplyParameters{MessageID: msg.MessageID})
	if _, err := a.bot.SendMessage(ctx, params); err != nil {
		a.logger.Warn(ctx, "Reply to chat %d failed: %v", msg.Chat.ID, err)
	}
}
