package writer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	DefaultDir      = "../inputs/"
	DefaultTemplate = "input%d.mr"
	DefaultPerm     = os.FileMode(0644)
)

// WriteError wraps an I/O failure for one output file.
type WriteError struct {
	Index int
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write file %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

var verbRe = regexp.MustCompile(`%[-+# 0]*[0-9]*(\.[0-9]+)?[a-zA-Z]`)

// CheckTemplate requires exactly one integer verb (%d, %x, %o, %b, %X
// with optional flags and width) and no other verbs. %% is allowed.
func CheckTemplate(template string) error {
	verbs := verbRe.FindAllString(strings.ReplaceAll(template, "%%", ""), -1)
	if len(verbs) != 1 {
		return fmt.Errorf("template %q must contain exactly one index verb, found %d", template, len(verbs))
	}
	switch verbs[0][len(verbs[0])-1] {
	case 'd', 'x', 'X', 'o', 'b':
		return nil
	}
	return fmt.Errorf("template %q: %s is not an integer verb", template, verbs[0])
}

type Options struct {
	Dir      string
	Template string
	Perm     os.FileMode
}

// FileWriter writes numbered files into a fixed directory. The directory must
// already exist.
type FileWriter struct {
	dir      string
	template string
	perm     os.FileMode
}

func New(opts Options) *FileWriter {
	fw := &FileWriter{dir: opts.Dir, template: opts.Template, perm: opts.Perm}
	if fw.dir == "" {
		fw.dir = DefaultDir
	}
	if fw.template == "" {
		fw.template = DefaultTemplate
	}
	if fw.perm == 0 {
		fw.perm = DefaultPerm
	}
	return fw
}

func (fw *FileWriter) Dir() string {
	return fw.dir
}

// Name returns the file name for index, e.g. input3.mr.
func (fw *FileWriter) Name(index int) string {
	return fmt.Sprintf(fw.template, index)
}

func (fw *FileWriter) Path(index int) string {
	return filepath.Join(fw.dir, fw.Name(index))
}

// Write stores content verbatim at Path(index), truncating any existing file.
func (fw *FileWriter) Write(index int, content string) (string, error) {
	path, _, err := fw.WriteStream(index, func(w io.Writer) (int64, error) {
		n, err := io.WriteString(w, content)
		return int64(n), err
	})
	return path, err
}

// WriteStream truncates Path(index) and lets fill write the content.
// Errors from fill are wrapped like I/O errors, except context cancellation
// which is returned as is.
func (fw *FileWriter) WriteStream(index int, fill func(io.Writer) (int64, error)) (string, int64, error) {
	path := fw.Path(index)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fw.perm)
	if err != nil {
		return path, 0, &WriteError{Index: index, Path: path, Err: err}
	}

	n, err := fill(f)
	if err != nil {
		f.Close()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return path, n, err
		}
		return path, n, &WriteError{Index: index, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return path, n, &WriteError{Index: index, Path: path, Err: err}
	}
	return path, n, nil
}
