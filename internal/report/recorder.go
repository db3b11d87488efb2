// Package report writes raw API response bodies to a results directory so a
// failed run can be inspected after the fact.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bobmcallan/finqa/internal/common"
)

// Recorder saves every response it is handed, numbered in call order.
type Recorder struct {
	dir    string
	logger *common.Logger

	mu  sync.Mutex
	seq int
}

// NewRecorder creates a recorder writing into dir. The directory is created
// on first write.
func NewRecorder(dir string, logger *common.Logger) *Recorder {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Recorder{dir: dir, logger: logger}
}

// RunDir returns the per-test directory under root: {datetime}-{test-name}.
func RunDir(root, testName string, now time.Time) string {
	return filepath.Join(root, now.Format("20060102-150405")+"-"+sanitize(testName))
}

// Dir returns the directory results are written to.
func (r *Recorder) Dir() string {
	return r.dir
}

// Record writes body, pretty-printed when it is JSON, to
// NNN-<method>-<path>.json. Failures are logged and otherwise ignored.
func (r *Recorder) Record(method, path string, status int, body []byte) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	name := fmt.Sprintf("%03d-%s-%s.json", seq, strings.ToLower(method), sanitize(path))
	if err := r.write(name, FormatJSON(body)); err != nil {
		r.logger.Warn().Err(err).Str("file", name).Int("status", status).Msg("Failed to record response")
	}
}

// SaveResult writes free-form output to <name>.md.
func (r *Recorder) SaveResult(name, output string) error {
	return r.write(sanitize(name)+".md", []byte(output))
}

func (r *Recorder) write(name string, data []byte) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.dir, name), data, 0644)
}

// FormatJSON pretty-prints data when it is JSON and returns it unchanged
// otherwise.
func FormatJSON(data []byte) []byte {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return data
	}
	formatted, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return data
	}
	return formatted
}

func sanitize(s string) string {
	s = strings.Trim(s, "/")
	if s == "" {
		return "root"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '-'
	}, s)
}
