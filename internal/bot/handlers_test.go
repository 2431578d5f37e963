package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/mymmrac/telego"

	"voicebrief/internal/media"
	"voicebrief/internal/pipeline"
)

func TestMediaItem(t *testing.T) {
	tests := []struct {
		name     string
		msg      *telego.Message
		wantKind media.Kind
		wantName string
	}{
		{
			name:     "voice",
			msg:      &telego.Message{Voice: &telego.Voice{FileID: "v1", FileSize: 10}},
			wantKind: media.KindVoice,
			wantName: "voice.oga",
		},
		{
			name:     "audio with name",
			msg:      &telego.Message{Audio: &telego.Audio{FileID: "a1", FileName: "track.mp3", FileSize: 10}},
			wantKind: media.KindAudio,
			wantName: "track.mp3",
		},
		{
			name:     "audio without name",
			msg:      &telego.Message{Audio: &telego.Audio{FileID: "a1", FileSize: 10}},
			wantKind: media.KindAudio,
			wantName: "audio.mp3",
		},
		{
			name:     "video",
			msg:      &telego.Message{Video: &telego.Video{FileID: "vid1", FileSize: 10}},
			wantKind: media.KindVideo,
			wantName: "video.mp4",
		},
		{
			name:     "video note",
			msg:      &telego.Message{VideoNote: &telego.VideoNote{FileID: "vn1", FileSize: 10}},
			wantKind: media.KindVideoNote,
			wantName: "video_note.mp4",
		},
		{
			name:     "document",
			msg:      &telego.Message{Document: &telego.Document{FileID: "d1", FileName: "memo.wav", FileSize: 10}},
			wantKind: media.KindDocument,
			wantName: "memo.wav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := mediaItem(tt.msg)
			if !ok {
				t.Fatal("mediaItem() = false, want attachment")
			}
			if item.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", item.Kind, tt.wantKind)
			}
			if item.FileName != tt.wantName {
				t.Errorf("FileName = %q, want %q", item.FileName, tt.wantName)
			}
		})
	}
}

func TestMediaItemTextOnly(t *testing.T) {
	if _, ok := mediaItem(&telego.Message{Text: "hello"}); ok {
		t.Error("mediaItem() should not match text messages")
	}
}

func TestUserFacingError(t *testing.T) {
	maxSize := int64(20 * 1024 * 1024)

	tests := []struct {
		err  error
		want string
	}{
		{media.ErrTooLarge, "too large"},
		{pipeline.ErrNoSpeech, "could not detect any speech"},
		{media.ErrUnsupportedFormat, "not supported"},
		{errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		got := userFacingError(tt.err, maxSize)
		if !strings.Contains(got, tt.want) {
			t.Errorf("userFacingError(%v) = %q, want substring %q", tt.err, got, tt.want)
		}
	}

	if got := userFacingError(media.ErrTooLarge, maxSize); !strings.Contains(got, "20 MB") {
		t.Errorf("size message should name the limit: %q", got)
	}
}
