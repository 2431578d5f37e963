package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"voicebrief/internal/media"
)

type telegramFetcher struct {
	bot *telego.Bot
}

// NewFetcher returns a media.Fetcher that downloads files through the
// Bot API by their file ID.
func NewFetcher(bot *telego.Bot) media.Fetcher {
	return &telegramFetcher{bot: bot}
}

func (f *telegramFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	file, err := f.bot.GetFile(ctx, &telego.GetFileParams{FileID: ref})
	if err != nil {
		return nil, fmt.Errorf("resolve file %s: %w", ref, err)
	}

	data, err := tu.DownloadFile(f.bot.FileDownloadURL(file.FilePath))
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", ref, err)
	}
	return data, nil
}
