package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given explicitly.
const DefaultPath = "config.yaml"

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	YtDlp       YtDlpConfig       `yaml:"ytdlp"`
	Summary     SummaryConfig     `yaml:"summary"`
	Export      ExportConfig      `yaml:"export"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	APIKeys           []string      `yaml:"api_keys"`
	Model             string        `yaml:"model"`
	AudioModel        string        `yaml:"audio_model"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	Timeout           time.Duration `yaml:"timeout"`
}

type YouTubeConfig struct {
	APIKey     string `yaml:"api_key"`
	WatchURL   string `yaml:"watch_url"`
	MaxResults int    `yaml:"max_results"`
}

type YtDlpConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	AudioFormat  string `yaml:"audio_format"`
	AudioQuality string `yaml:"audio_quality"`
}

type SummaryConfig struct {
	MaxChunkChars int    `yaml:"max_chunk_chars"`
	Language      string `yaml:"language"`
	Mode          string `yaml:"mode"`
}

type ExportConfig struct {
	Formats  []string `yaml:"formats"`
	FontName string   `yaml:"font_name"`
	FontSize int      `yaml:"font_size"`
	// PDFFontPath is an optional TTF used for PDFs; needed for non-Latin text.
	PDFFontPath string `yaml:"pdf_font_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type PerformanceConfig struct {
	MaxConcurrent  int           `yaml:"max_concurrent"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. A missing file at DefaultPath is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		// defaults + environment only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays secrets from the environment. Each setting accepts the
// same aliases the hosted deployment has always used.
func (c *Config) applyEnv() {
	if v := firstEnv("GEMINI_API_KEY", "GENAI_API_KEY", "GOOGLE_API_KEY"); v != "" {
		c.Gemini.APIKeys = splitList(v)
	}
	if v := firstEnv("YT_API_KEY", "YOUTUBE_API_KEY", "YOUTUBE_API"); v != "" {
		c.YouTube.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}
	if c.Summary.MaxChunkChars < 0 {
		return fmt.Errorf("summary.max_chunk_chars must be positive")
	}
	switch c.Summary.Language {
	case "", "en", "hi":
	default:
		return fmt.Errorf("summary.language must be en or hi, got %q", c.Summary.Language)
	}
	switch c.Summary.Mode {
	case "", "both", "detailed", "keypoints":
	default:
		return fmt.Errorf("summary.mode must be both, detailed or keypoints, got %q", c.Summary.Mode)
	}
	for _, f := range c.Export.Formats {
		switch f {
		case "txt", "pdf", "docx":
		default:
			return fmt.Errorf("export.formats: unsupported format %q", f)
		}
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.AudioModel == "" {
		c.Gemini.AudioModel = c.Gemini.Model
	}
	if c.Gemini.RequestsPerMinute == 0 {
		c.Gemini.RequestsPerMinute = 10
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 5 * time.Minute
	}
	if c.YouTube.WatchURL == "" {
		c.YouTube.WatchURL = "https://www.youtube.com/watch"
	}
	if c.YouTube.MaxResults == 0 {
		c.YouTube.MaxResults = 6
	}
	if c.YtDlp.BinaryPath == "" {
		c.YtDlp.BinaryPath = "yt-dlp"
	}
	if c.YtDlp.AudioFormat == "" {
		c.YtDlp.AudioFormat = "mp3"
	}
	if c.YtDlp.AudioQuality == "" {
		c.YtDlp.AudioQuality = "128K"
	}
	if c.Summary.MaxChunkChars == 0 {
		c.Summary.MaxChunkChars = 15000
	}
	if c.Summary.Language == "" {
		c.Summary.Language = "en"
	}
	if c.Summary.Mode == "" {
		c.Summary.Mode = "both"
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"txt"}
	}
	if c.Export.FontName == "" {
		c.Export.FontName = "Times New Roman"
	}
	if c.Export.FontSize == 0 {
		c.Export.FontSize = 13
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.RequestTimeout == 0 {
		c.Performance.RequestTimeout = 30 * time.Minute
	}

	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
