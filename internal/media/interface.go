package media

import "context"

// Kind identifies the inbound media type.
type Kind int

const (
	KindVoice Kind = iota
	KindAudio
	KindVideo
	KindVideoNote
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindVoice:
		return "voice"
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	case KindVideoNote:
		return "video_note"
	case KindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Item describes one inbound media attachment. It is built when a
// message arrives and consumed exactly once by Normalize.
type Item struct {
	Kind     Kind
	FileRef  string // opaque handle understood by the Fetcher
	FileName string
	Size     int64 // declared size in bytes, checked before any download
}

// Fetcher acquires the raw bytes behind an Item's file reference.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// Normalizer converts arbitrary inbound media into the canonical mp3
// profile. The returned path is a temporary file owned by the caller,
// who must remove it when done.
type Normalizer interface {
	Normalize(ctx context.Context, item Item) (string, error)
}
