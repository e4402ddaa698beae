package cmd

import (
	"io"

	"mrgen/pkg/generator"
	"mrgen/pkg/utils"
	"mrgen/pkg/writer"
)

// deps are shared by the interactive shell and the generate subcommand.
type deps struct {
	resolver *generator.Resolver
	numbers  *generator.NumberGenerator
	writer   *writerAdapter
	stats    *generator.Stats
}

// writerAdapter logs each written file at debug level.
type writerAdapter struct {
	*writer.FileWriter
}

func (w *writerAdapter) WriteStream(index int, fill func(io.Writer) (int64, error)) (string, int64, error) {
	path, n, err := w.FileWriter.WriteStream(index, fill)
	if err != nil {
		return path, n, err
	}
	utils.Debug.Printf("wrote %s (%d bytes)\n", path, n)
	return path, n, nil
}

func newDeps(c *utils.Config) (*deps, error) {
	perm, err := c.FilePerm()
	if err != nil {
		return nil, err
	}

	rng := generator.NewRand(c.Random.Seed)
	bounds := generator.Bounds{
		MaxFiles:   c.Bounds.MaxFiles,
		MaxNumbers: c.Bounds.MaxNumbers,
		MaxRange:   c.Bounds.MaxRange,
	}

	fw := writer.New(writer.Options{
		Dir:      c.Output.Dir,
		Template: c.Output.Template,
		Perm:     perm,
	})

	return &deps{
		resolver: generator.NewResolver(bounds, c.Random.Marker, rng),
		numbers:  generator.NewNumberGenerator(rng),
		writer:   &writerAdapter{FileWriter: fw},
		stats:    generator.NewStats(),
	}, nil
}
