package videoid

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		wantID string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with params", "https://www.youtube.com/watch?v=abc123XYZ_-&t=42s", "abc123XYZ_-", true},
		{"v param not first", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=xyz", "dQw4w9WgXcQ", true},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"bare id with whitespace", "  dQw4w9WgXcQ\n", "dQw4w9WgXcQ", true},
		{"short", "short", "", false},
		{"eleven chars with space", "hello world", "hello world", true},
		{"short link with timestamp", "https://youtu.be/abc12345678?t=5", "abc12345678", true},
		{"any host with v param", "https://x/watch?v=abc12345678&t=5", "abc12345678", true},
		{"bare eleven chars", "abc12345678", "abc12345678", true},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
		{"eleven chars with slash", "abc/defghij", "", false},
		{"empty v value", "https://www.youtube.com/watch?v=", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Extract(tt.ref)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("Extract(%q) = (%q, %v), want (%q, %v)", tt.ref, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("nope"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Parse() error = %v, want ErrInvalidReference", err)
	}
	id, err := Parse("https://youtu.be/dQw4w9WgXcQ")
	if err != nil || id != "dQw4w9WgXcQ" {
		t.Errorf("Parse() = (%q, %v)", id, err)
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("dQw4w9WgXcQ")
	if got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("WatchURL() = %v", got)
	}
	if id, ok := Extract(got); !ok || id != "dQw4w9WgXcQ" {
		t.Errorf("Extract(WatchURL()) = (%q, %v)", id, ok)
	}
}

func TestIsBareID(t *testing.T) {
	if !IsBareID("dQw4w9WgXcQ") {
		t.Error("IsBareID(bare) = false")
	}
	if IsBareID("https://youtu.be/dQw4w9WgXcQ") {
		t.Error("IsBareID(url) = true")
	}
}

var idGen = rapid.StringMatching(`[A-Za-z0-9_-]{11}`)

func TestExtractRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := idGen.Draw(t, "id")
		suffix := rapid.StringMatching(`(&[a-z]{1,5}=[a-z0-9]{0,5}){0,3}`).Draw(t, "suffix")

		for _, ref := range []string{
			"https://www.youtube.com/watch?v=" + id + suffix,
			"https://youtu.be/" + id,
			"https://youtu.be/" + id + "?si=share",
			id,
		} {
			got, ok := Extract(ref)
			if !ok || got != id {
				t.Fatalf("Extract(%q) = (%q, %v), want %q", ref, got, ok, id)
			}
		}
	})
}

func TestExtractDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ref := rapid.String().Draw(t, "ref")
		id1, ok1 := Extract(ref)
		id2, ok2 := Extract(ref)
		if id1 != id2 || ok1 != ok2 {
			t.Fatalf("Extract not deterministic for %q", ref)
		}
		if ok1 && id1 == "" {
			t.Fatalf("Extract(%q) reported an empty identifier", ref)
		}
	})
}
