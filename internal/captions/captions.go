package captions

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const playerResponseMarker = "ytInitialPlayerResponse = "

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type timedText struct {
	Lines []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Text  string  `xml:",chardata"`
	} `xml:"text"`
}

func (f *implFetcher) FetchCaptions(ctx context.Context, id string, langs []string) ([]Segment, error) {
	tracks, err := f.listTracks(ctx, id)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, langs)
	if !ok {
		return nil, fmt.Errorf("no track for languages %v: %w", langs, ErrNoCaptions)
	}
	f.l.Debug(ctx, "Using %s caption track (kind=%q) for %s", track.LanguageCode, track.Kind, id)

	body, err := f.get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}

	segments, err := parseTimedText(body, track.LanguageCode)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("empty caption track: %w", ErrNoCaptions)
	}
	return segments, nil
}

func (f *implFetcher) listTracks(ctx context.Context, id string) ([]captionTrack, error) {
	page, err := f.get(ctx, f.watchURL+"?v="+url.QueryEscape(id))
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}

	idx := bytes.Index(page, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, fmt.Errorf("player response not found in watch page")
	}
	raw := extractJSON(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, fmt.Errorf("malformed player response")
	}

	var resp playerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	if resp.Captions == nil || len(resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		if resp.PlayabilityStatus != nil && resp.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("%s: %w", resp.PlayabilityStatus.Reason, ErrNoCaptions)
		}
		return nil, ErrNoCaptions
	}
	return resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

func (f *implFetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}

// pickTrack walks langs in order and returns the manual track for the
// first language that has one, falling back to its auto-generated track.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	for _, lang := range langs {
		var generated *captionTrack
		for i, t := range tracks {
			if t.LanguageCode != lang || t.BaseURL == "" {
				continue
			}
			if t.Kind != "asr" {
				return t, true
			}
			if generated == nil {
				generated = &tracks[i]
			}
		}
		if generated != nil {
			return *generated, true
		}
	}
	return captionTrack{}, false
}

func parseTimedText(body []byte, lang string) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     strings.Join(strings.Fields(text), " "),
			Start:    line.Start,
			Duration: line.Dur,
			Language: lang,
		})
	}
	return segments, nil
}

// extractJSON returns the balanced JSON object at the start of b.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr, escaped := false, false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// JoinText joins segment texts with single spaces.
func JoinText(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, " ")
}
