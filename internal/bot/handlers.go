package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"

	"voicebrief/internal/media"
	"voicebrief/internal/pipeline"
)

const welcomeTemplate = `Send me a voice message, an audio file, a video or a video note and I will reply with a transcription and a short summary.

Limits:
• files up to %d MB
• audio documents: .mp3, .wav, .oga

Use /engine to pick the AI engine.`

func (a *App) handleText(ctx context.Context, msg *telego.Message) {
	switch {
	case strings.HasPrefix(msg.Text, "/start"):
		limitMB := a.cfg.Media.MaxFileSize / (1024 * 1024)
		a.reply(ctx, msg, fmt.Sprintf(welcomeTemplate, limitMB))
	case strings.HasPrefix(msg.Text, "/engine"):
		a.sendEngineKeyboard(ctx, msg)
	case msg.Animation != nil || msg.Sticker != nil:
		a.reply(ctx, msg, "I cannot transcribe animations or stickers. Send a voice message, audio, video or video note.")
	case msg.Text != "":
		a.reply(ctx, msg, "That is already text. Send me a voice message, audio, video or video note to transcribe.")
	}
}

func (a *App) handleCallback(ctx context.Context, query *telego.CallbackQuery) {
	engine, ok := strings.CutPrefix(query.Data, "engine:")
	if !ok {
		return
	}

	confirmation := fmt.Sprintf("Engine switched to %s", engine)
	if _, err := a.engines.Get(engine); err != nil {
		confirmation = "That engine is not available"
	} else {
		a.sessions.SetEngine(query.From.ID, engine)
		a.logger.Info(ctx, "User %d switched engine to %s", query.From.ID, engine)
	}

	err := a.bot.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
		Text:            confirmation,
	})
	if err != nil {
		a.logger.Warn(ctx, "Answering callback query failed: %v", err)
	}
}

func (a *App) handleMedia(ctx context.Context, msg *telego.Message, item media.Item) {
	a.reply(ctx, msg, "Processing your media file...")

	engine, _ := a.sessions.Engine(msg.From.ID)
	sink := &replySink{app: a, chatID: msg.Chat.ID, replyTo: msg.MessageID}

	if err := a.pipe.Process(ctx, item, engine, sink); err != nil {
		a.logger.Error(ctx, "Processing %s from user %d failed: %v", item.Kind, msg.From.ID, err)
		a.reply(ctx, msg, userFacingError(err, a.cfg.Media.MaxFileSize))
	}
}

func userFacingError(err error, maxFileSize int64) string {
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return fmt.Sprintf("This file is too large. The limit is %d MB.", maxFileSize/(1024*1024))
	case errors.Is(err, media.ErrUnsupportedFormat):
		return "This file format is not supported. Audio documents must be .mp3, .wav or .oga."
	case errors.Is(err, pipeline.ErrNoSpeech):
		return "I could not detect any speech in this file."
	default:
		return fmt.Sprintf("Something went wrong while processing your file: %v", err)
	}
}

// mediaItem extracts a processable attachment from the message. Telegram
// omits file names for voice and video notes, so stable defaults are
// substituted.
func mediaItem(msg *telego.Message) (media.Item, bool) {
	switch {
	case msg.Voice != nil:
		return media.Item{Kind: media.KindVoice, FileRef: msg.Voice.FileID, FileName: "voice.oga", Size: msg.Voice.FileSize}, true
	case msg.Audio != nil:
		name := msg.Audio.FileName
		if name == "" {
			name = "audio.mp3"
		}
		return media.Item{Kind: media.KindAudio, FileRef: msg.Audio.FileID, FileName: name, Size: msg.Audio.FileSize}, true
	case msg.Video != nil:
		name := msg.Video.FileName
		if name == "" {
			name = "video.mp4"
		}
		return media.Item{Kind: media.KindVideo, FileRef: msg.Video.FileID, FileName: name, Size: msg.Video.FileSize}, true
	case msg.VideoNote != nil:
		return media.Item{Kind: media.KindVideoNote, FileRef: msg.VideoNote.FileID, FileName: "video_note.mp4", Size: int64(msg.VideoNote.FileSize)}, true
	case msg.Document != nil:
		return media.Item{Kind: media.KindDocument, FileRef: msg.Document.FileID, FileName: msg.Document.FileName, Size: msg.Document.FileSize}, true
	}
	return media.Item{}, false
}
