package media

import (
	"context"
	"os"
)

type fileFetcher struct{}

// NewFileFetcher returns a Fetcher that treats the file reference as a
// local filesystem path. Used by the batch folder mode.
func NewFileFetcher() Fetcher {
	return fileFetcher{}
}

func (fileFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	return os.ReadFile(ref)
}
