package media

import (
	"errors"
	"fmt"
)

var (
	// ErrTooLarge is returned before any download when the declared
	// size exceeds the configured limit.
	ErrTooLarge = errors.New("media: file exceeds size limit")

	// ErrUnsupportedFormat is returned for documents whose extension
	// is outside the audio allow-list.
	ErrUnsupportedFormat = errors.New("media: unsupported document format")
)

// TranscodeError wraps a failed transcoder invocation. The underlying
// error carries the tool's stderr diagnostics.
type TranscodeError struct {
	Err error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("media: transcoding failed: %v", e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }
