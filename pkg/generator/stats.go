package generator

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// Stats tracks what a run wrote
type Stats struct {
	Files     int
	Numbers   int
	Bytes     int64
	StartTime time.Time
}

// NewStats creates a new stats tracker
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// AddFile records one written file
func (s *Stats) AddFile(numbers int, bytes int64) {
	s.Files++
	s.Numbers += numbers
	s.Bytes += bytes
}

// GetElapsed returns elapsed time
func (s *Stats) GetElapsed() time.Duration {
	return time.Since(s.StartTime)
}

// Table returns the stats as pterm table rows, header first
func (s *Stats) Table() pterm.TableData {
	return pterm.TableData{
		{"Metric", "Value"},
		{"Files", fmt.Sprintf("%d", s.Files)},
		{"Numbers", fmt.Sprintf("%d", s.Numbers)},
		{"Bytes", fmt.Sprintf("%d", s.Bytes)},
		{"Elapsed", s.GetElapsed().Round(time.Millisecond).String()},
	}
}

// Summary returns a compact one-line summary
func (s *Stats) Summary() string {
	return fmt.Sprintf("Files: %d | Numbers: %d | Bytes: %d | Time: %s",
		s.Files, s.Numbers, s.Bytes, s.GetElapsed().Round(time.Millisecond))
}
