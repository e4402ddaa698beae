package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"mrgen/pkg/generator"
	"mrgen/pkg/writer"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func newTestShell(t *testing.T, input, dir string) (*Shell, *bytes.Buffer) {
	t.Helper()
	rng := generator.NewRand(21)
	fw := writer.New(writer.Options{Dir: dir})
	out := &bytes.Buffer{}
	sh := New(Options{
		In:        strings.NewReader(input),
		Out:       out,
		Resolver:  generator.NewResolver(generator.DefaultBounds(), generator.DefaultMarker, rng),
		Numbers:   generator.NewNumberGenerator(rng),
		Writer:    fw,
		OutputDir: dir,
		Stats:     generator.NewStats(),
	})
	return sh, out
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSingleFileScenario(t *testing.T) {
	dir := t.TempDir()
	sh, out := newTestShell(t, "1\n1\n3\n5\n", dir)

	state, err := sh.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Exited, state)

	require.Equal(t, []string{"input0.mr"}, listFiles(t, dir))
	data, err := os.ReadFile(filepath.Join(dir, "input0.mr"))
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^-?[0-5],-?[0-5],-?[0-5]$`), string(data))

	text := out.String()
	require.Equal(t, 3, strings.Count(text, thanksMessage))
	require.Contains(t, text, "Generating 1 files, 3 numbers per file and range(-5,5).")
	require.Contains(t, text, "All done! You can find your files in "+dir)
	require.True(t, strings.HasSuffix(strings.TrimSpace(text), farewellMessage))
}

func TestThreeFilesScenario(t *testing.T) {
	dir := t.TempDir()
	sh, _ := newTestShell(t, "1\n3\nx\n20\n", dir)

	_, err := sh.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"input0.mr", "input1.mr", "input2.mr"}, listFiles(t, dir))
	req := sh.Request()
	require.Equal(t, 3, req.FileCount)
	require.True(t, req.NumbersPerFile >= 1 && req.NumbersPerFile <= 100)

	for _, f := range sh.Files() {
		data, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		nums, err := generator.ParseNumbers(string(data))
		require.NoError(t, err)
		require.Len(t, nums, req.NumbersPerFile)
		for _, n := range nums {
			require.True(t, n >= -20 && n <= 20, "value %d out of range", n)
		}
	}
}

func TestSingleNumberPerFile(t *testing.T) {
	dir := t.TempDir()
	sh, _ := newTestShell(t, "1\n1\n1\nx\n", dir)

	_, err := sh.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "input0.mr"))
	require.NoError(t, err)
	require.NotContains(t, string(data), ",")
}

func TestMenuExit(t *testing.T) {
	for _, choice := range []string{"2\n", "exit\n", "generate\n", "\n", ""} {
		t.Run(strings.TrimSpace(choice), func(t *testing.T) {
			dir := t.TempDir()
			sh, out := newTestShell(t, choice, dir)

			state, err := sh.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, Exited, state)
			require.Empty(t, listFiles(t, dir))
			require.Contains(t, out.String(), farewellMessage)
			require.NotContains(t, out.String(), thanksMessage)
		})
	}
}

func TestTokensAreNotValidatedAtPrompt(t *testing.T) {
	dir := t.TempDir()
	sh, out := newTestShell(t, "1\nmany\n3\n5\n", dir)

	state, err := sh.Run(context.Background())
	var pe *generator.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "file count", pe.Param)
	require.Equal(t, Generating, state)

	// all three prompts were acknowledged before the failure
	require.Equal(t, 3, strings.Count(out.String(), thanksMessage))
	require.NotContains(t, out.String(), farewellMessage)
	require.Empty(t, listFiles(t, dir))
}

func TestUnexpectedEOFAtPrompt(t *testing.T) {
	sh, _ := newTestShell(t, "1\n2\n", t.TempDir())

	state, err := sh.Run(context.Background())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, PromptNumberCount, state)
}

func TestLastLineWithoutNewline(t *testing.T) {
	dir := t.TempDir()
	sh, _ := newTestShell(t, "1\n2\n4\n9", dir)

	_, err := sh.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, listFiles(t, dir), 2)
}

func TestWriteFailureIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	sh, out := newTestShell(t, "1\n2\n2\n2\n", missing)

	state, err := sh.Run(context.Background())
	var we *writer.WriteError
	require.ErrorAs(t, err, &we)
	require.Equal(t, 0, we.Index)
	require.Equal(t, Generating, state)
	require.NotContains(t, out.String(), "All done!")
}

func TestStateString(t *testing.T) {
	require.Equal(t, "welcome", Welcome.String())
	require.Equal(t, "exited", Exited.String())
	require.Equal(t, "state(42)", State(42).String())
}
