package media

import (
	"voicebrief/internal/logger"
	"voicebrief/pkg/executor"
)

type implNormalizer struct {
	fetcher    Fetcher
	executor   executor.Executor
	logger     logger.Logger
	maxSize    int64
	ffmpegPath string
}

// New creates a Normalizer instance
func New(fetcher Fetcher, exec executor.Executor, log logger.Logger, maxSize int64, ffmpegPath string) Normalizer {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &implNormalizer{
		fetcher:    fetcher,
		executor:   exec,
		logger:     log,
		maxSize:    maxSize,
		ffmpegPath: ffmpegPath,
	}
}
