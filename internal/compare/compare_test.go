package compare

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/woozymasta/turbolz"
)

var sample = bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. 0123456789\n"), 64)

func TestRunAllCodecsRoundTrip(t *testing.T) {
	results := Run(sample, Codecs())
	if len(results) != len(Codecs()) {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Name != "turbolz" {
		t.Fatalf("first result %q", results[0].Name)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Name, r.Err)
		}
		if !r.Verified {
			t.Fatalf("%s: round trip not verified", r.Name)
		}
		if r.Stats.In != int64(len(sample)) || r.Stats.Out == 0 {
			t.Fatalf("%s: stats %+v", r.Name, r.Stats)
		}
		if r.Stats.Out >= r.Stats.In {
			t.Fatalf("%s: repetitive input did not shrink: %v", r.Name, r.Stats)
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	errBroken := errors.New("broken")
	codecs := []Codec{
		{
			Name:       "broken",
			Compress:   func(src []byte) ([]byte, error) { return nil, errBroken },
			Decompress: func(src []byte) ([]byte, error) { return src, nil },
		},
		{
			Name:       "lossy",
			Compress:   func(src []byte) ([]byte, error) { return src[:len(src)/2], nil },
			Decompress: func(src []byte) ([]byte, error) { return src, nil },
		},
	}
	results := Run(sample, codecs)
	if !errors.Is(results[0].Err, errBroken) {
		t.Fatalf("want errBroken, got %v", results[0].Err)
	}
	if results[1].Err != nil || results[1].Verified {
		t.Fatalf("lossy codec: %+v", results[1])
	}
}

func TestRunEmptyInput(t *testing.T) {
	results := Run(nil, Codecs())
	if results[0].Err != nil || !results[0].Verified {
		t.Fatalf("turbolz on empty input: %+v", results[0])
	}
	for _, r := range results {
		if r.Stats.Percent() != 0 {
			t.Fatalf("%s: percent %v on empty input", r.Name, r.Stats.Percent())
		}
	}
}

func TestChart(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
	}{
		{"all codecs", Run(sample, Codecs())},
		{"empty input", Run(nil, Codecs())},
		{"single result", Run([]byte("x"), Codecs()[:1])},
		{"equal bars", []Result{
			{Name: "a", Stats: turbolz.Stats{In: 10, Out: 5}},
			{Name: "b", Stats: turbolz.Stats{In: 10, Out: 5}},
		}},
		{"over 100%", Run([]byte("xyz"), Codecs())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Chart(&buf, tt.name, tt.results); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), "<svg") {
				t.Fatalf("not an svg: %.64q", buf.String())
			}
		})
	}
}
