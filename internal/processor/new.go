package processor

import (
	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/export"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
	"github.com/nguyentantai21042004/yousummarizer/internal/summarizer"
	"github.com/nguyentantai21042004/yousummarizer/internal/transcript"
	"github.com/nguyentantai21042004/yousummarizer/internal/youtube"
)

type implProcessor struct {
	cfg        *config.Config
	acquirer   transcript.Acquirer
	summarizer summarizer.Summarizer
	videos     youtube.Client
	exporter   export.Exporter
	logger     logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	acq transcript.Acquirer,
	sum summarizer.Summarizer,
	videos youtube.Client,
	exp export.Exporter,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:        cfg,
		acquirer:   acq,
		summarizer: sum,
		videos:     videos,
		exporter:   exp,
		logger:     log,
	}
}
