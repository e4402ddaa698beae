package generator

import (
	"context"
	"io"
)

// FileWriter persists the content for one file index. fill streams the
// content into the open file; the path and byte count are returned.
type FileWriter interface {
	WriteStream(index int, fill func(io.Writer) (int64, error)) (string, int64, error)
}

// FileResult describes one written file.
type FileResult struct {
	Index   int    `json:"index"`
	Path    string `json:"path"`
	Numbers int    `json:"numbers"`
	Bytes   int64  `json:"bytes"`
}

// Job generates and writes every file of a request in index order.
type Job struct {
	Request GenerationRequest
	Numbers *NumberGenerator
	Writer  FileWriter
	Stats   *Stats
}

// Run stops at the first write error; files already written stay on disk.
func (j *Job) Run(ctx context.Context) ([]FileResult, error) {
	results := make([]FileResult, 0, min(j.Request.FileCount, 1024))
	for i := 0; i < j.Request.FileCount; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		path, n, err := j.Writer.WriteStream(i, func(w io.Writer) (int64, error) {
			return j.Numbers.Stream(ctx, w, j.Request.NumbersPerFile, j.Request.RangeMagnitude)
		})
		if err != nil {
			return results, err
		}

		results = append(results, FileResult{
			Index:   i,
			Path:    path,
			Numbers: j.Request.NumbersPerFile,
			Bytes:   n,
		})
		if j.Stats != nil {
			j.Stats.AddFile(j.Request.NumbersPerFile, n)
		}
	}
	return results, nil
}
