package reporter

import (
	"encoding/json"
	"os"
	"time"

	"mrgen/pkg/generator"

	"github.com/google/uuid"
)

type Reporter struct {
	RunID   uuid.UUID
	Request generator.GenerationRequest
	Files   []generator.FileResult
}

type Report struct {
	RunID    string                      `json:"run_id"`
	Time     time.Time                   `json:"time"`
	Request  generator.GenerationRequest `json:"request"`
	Files    []generator.FileResult      `json:"files"`
	Complete bool                        `json:"complete"`
}

func NewReporter(req generator.GenerationRequest) *Reporter {
	return &Reporter{
		RunID:   uuid.New(),
		Request: req,
	}
}

func (r *Reporter) AddFiles(files ...generator.FileResult) {
	r.Files = append(r.Files, files...)
}

// GenerateReport writes the run manifest as indented JSON.
func (r *Reporter) GenerateReport(filename string) error {
	report := Report{
		RunID:    r.RunID.String(),
		Time:     time.Now(),
		Request:  r.Request,
		Files:    r.Files,
		Complete: len(r.Files) == r.Request.FileCount,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	// 0600 keeps the manifest private to the owner
	return os.WriteFile(filename, data, 0600)
}
