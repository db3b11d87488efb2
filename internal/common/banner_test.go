package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestPrintTwinBanner(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := NewDefaultConfig()

	PrintTwinBanner(&out, cfg, "http://127.0.0.1:5000/api", NewLoggerWithOutput("info", &logs))

	for _, want := range []string{"FINQA TWIN", "localhost", "data/fixtures.json", "http://127.0.0.1:5000/api", Version} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("banner missing %q:\n%s", want, out.String())
		}
	}
	if !strings.Contains(logs.String(), "Twin started") {
		t.Errorf("expected startup log line, got %q", logs.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
