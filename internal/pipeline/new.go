package pipeline

import (
	"voicebrief/internal/ai"
	"voicebrief/internal/logger"
	"voicebrief/internal/media"
	"voicebrief/pkg/failover"
)

type implPipeline struct {
	normalizer media.Normalizer
	engines    *ai.Registry
	logger     logger.Logger
	policy     failover.Config
	maxLen     int
}

func New(normalizer media.Normalizer, engines *ai.Registry, log logger.Logger, policy failover.Config, maxMessageLen int) Pipeline {
	if maxMessageLen <= 0 {
		maxMessageLen = 4096
	}
	return &implPipeline{
		normalizer: normalizer,
		engines:    engines,
		logger:     log,
		policy:     policy,
		maxLen:     maxMessageLen,
	}
}
