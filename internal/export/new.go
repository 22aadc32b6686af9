package export

import (
	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

const (
	defaultFontName = "Times New Roman"
	defaultFontSize = 13
)

type implExporter struct {
	fontName    string
	fontSize    int
	pdfFontPath string
	logger      logger.Logger
}

// New creates an Exporter using the fonts from cfg.
func New(cfg config.ExportConfig, log logger.Logger) Exporter {
	e := &implExporter{
		fontName:    cfg.FontName,
		fontSize:    cfg.FontSize,
		pdfFontPath: cfg.PDFFontPath,
		logger:      log,
	}
	if e.fontName == "" {
		e.fontName = defaultFontName
	}
	if e.fontSize <= 0 {
		e.fontSize = defaultFontSize
	}
	return e
}
