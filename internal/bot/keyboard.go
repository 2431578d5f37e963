package bot

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

func (a *App) sendEngineKeyboard(ctx context.Context, msg *telego.Message) {
	rows := make([][]telego.InlineKeyboardButton, 0, a.engines.Len())
	for _, name := range a.engines.Names() {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(name).WithCallbackData("engine:"+name),
		))
	}

	params := tu.Message(tu.ID(msg.Chat.ID), "Choose the AI engine:").
		WithReplyMarkup(tu.InlineKeyboard(rows...))
	if _, err := a.bot.SendMessage(ctx, params); err != nil {
		a.logger.Warn(ctx, "Sending engine keyboard failed: %v", err)
	}
}
