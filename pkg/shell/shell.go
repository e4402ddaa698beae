package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"mrgen/pkg/generator"

	"github.com/pterm/pterm"
)

type State int

const (
	Welcome State = iota
	MenuChoice
	PromptFileCount
	PromptNumberCount
	PromptRange
	Generating
	Done
	Exited
)

var stateNames = [...]string{
	"welcome", "menu", "prompt-files", "prompt-numbers", "prompt-range",
	"generating", "done", "exited",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Options struct {
	In  io.Reader
	Out io.Writer

	Resolver *generator.Resolver
	Numbers  *generator.NumberGenerator
	Writer   generator.FileWriter
	// OutputDir is only shown to the user.
	OutputDir string
	Stats     *generator.Stats
}

// Shell drives one interactive session: menu, three prompts, generation.
type Shell struct {
	in  *bufio.Reader
	out io.Writer

	resolver  *generator.Resolver
	numbers   *generator.NumberGenerator
	writer    generator.FileWriter
	outputDir string
	stats     *generator.Stats

	state  State
	tokens [3]string
	result []generator.FileResult
	req    generator.GenerationRequest
}

func New(opts Options) *Shell {
	return &Shell{
		in:        bufio.NewReader(opts.In),
		out:       opts.Out,
		resolver:  opts.Resolver,
		numbers:   opts.Numbers,
		writer:    opts.Writer,
		outputDir: opts.OutputDir,
		stats:     opts.Stats,
		state:     Welcome,
	}
}

// Request returns the resolved request once Generating has started.
func (s *Shell) Request() generator.GenerationRequest {
	return s.req
}

// Files returns the files written so far.
func (s *Shell) Files() []generator.FileResult {
	return s.result
}

// Run steps the state machine until Exited or an error. There are no retries:
// a parse or write error ends the session in the state where it happened.
func (s *Shell) Run(ctx context.Context) (State, error) {
	for s.state != Exited {
		if err := s.step(ctx); err != nil {
			return s.state, err
		}
	}
	return s.state, nil
}

func (s *Shell) step(ctx context.Context) error {
	b := s.resolver.Bounds
	marker := s.resolver.Marker

	switch s.state {
	case Welcome:
		fmt.Fprint(s.out, welcomeMessage+"\n")
		s.state = MenuChoice

	case MenuChoice:
		fmt.Fprint(s.out, menuMessage+"\n")
		fmt.Fprint(s.out, choicePrompt)
		choice, err := s.readLine()
		if err != nil && err != io.EOF {
			return err
		}
		if strings.TrimSpace(choice) != GenerateChoice {
			s.exit()
			return nil
		}
		s.state = PromptFileCount

	case PromptFileCount:
		return s.prompt(0, fmt.Sprintf(fileCountPrompt, b.MaxFiles, marker), PromptNumberCount)

	case PromptNumberCount:
		return s.prompt(1, fmt.Sprintf(numberCountPrompt, b.MaxNumbers, marker), PromptRange)

	case PromptRange:
		return s.prompt(2, fmt.Sprintf(rangePrompt, b.MaxRange, b.MaxRange, marker), Generating)

	case Generating:
		return s.generate(ctx)

	case Done:
		s.exit()
	}
	return nil
}

func (s *Shell) prompt(slot int, text string, next State) error {
	fmt.Fprint(s.out, text)
	tok, err := s.readLine()
	if err == io.EOF {
		return fmt.Errorf("%s: %w", s.state, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, thanksMessage)
	s.tokens[slot] = tok
	s.state = next
	return nil
}

func (s *Shell) generate(ctx context.Context) error {
	req, err := s.resolver.Resolve(s.tokens[0], s.tokens[1], s.tokens[2])
	if err != nil {
		return err
	}
	s.req = req

	pterm.Info.WithWriter(s.out).Println(req.String())
	fmt.Fprintln(s.out, pleaseWait)

	job := &generator.Job{
		Request: req,
		Numbers: s.numbers,
		Writer:  s.writer,
		Stats:   s.stats,
	}
	s.result, err = job.Run(ctx)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(s.out).Printfln(allDoneMessage, s.outputDir)
	s.state = Done
	return nil
}

func (s *Shell) exit() {
	fmt.Fprintln(s.out, farewellMessage)
	s.state = Exited
}

// readLine returns one line without its terminator. A final line without a
// newline is returned with a nil error; io.EOF means nothing was left to read.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}
