package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Prompter asks questions on the console and re-asks until the answer is valid.
// Reads are done in a background goroutine so a pending question can be interrupted by ctx
type Prompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

func (p *Prompter) readLines() {
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	p.lines <- line{err: err}
	close(p.lines)
}

// Ask prints the question and returns the trimmed answer
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	p.once.Do(func() { go p.readLines() })

	fmt.Fprint(p.out, question)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Float asks until a number satisfying check is entered. check returns the message shown on invalid input
func (p *Prompter) Float(ctx context.Context, question string, check func(float64) string) (float64, error) {
	for {
		answer, err := p.Ask(ctx, question)
		if err != nil {
			return 0, err
		}
		value, err := parseFloat(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
			continue
		}
		if check != nil {
			if msg := check(value); msg != "" {
				fmt.Fprintln(p.out, msg)
				continue
			}
		}
		return value, nil
	}
}

func (p *Prompter) NonNegativeFloat(ctx context.Context, question string) (float64, error) {
	return p.Float(ctx, question, NonNegative)
}

func (p *Prompter) PositiveFloat(ctx context.Context, question string) (float64, error) {
	return p.Float(ctx, question, Positive)
}

// OptionalFloat returns nil if the none answer (case insensitive) is entered
func (p *Prompter) OptionalFloat(ctx context.Context, question string, none string, check func(float64) string) (*float64, error) {
	for {
		answer, err := p.Ask(ctx, question)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(answer, none) {
			return nil, nil
		}
		value, err := parseFloat(answer)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input. Please enter a number or %s.\n", none)
			continue
		}
		if check != nil {
			if msg := check(value); msg != "" {
				fmt.Fprintln(p.out, msg)
				continue
			}
		}
		return &value, nil
	}
}

// Choice asks until one of options is entered, the answer is lowercased
func (p *Prompter) Choice(ctx context.Context, question string, options ...string) (string, error) {
	for {
		answer, err := p.Ask(ctx, question)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		for _, option := range options {
			if answer == option {
				return answer, nil
			}
		}
		fmt.Fprintf(p.out, "Invalid input. Please enter one of the following: %s\n", strings.Join(options, ", "))
	}
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func NonNegative(v float64) string {
	if v < 0 {
		return "Invalid input. Please enter a non-negative number."
	}
	return ""
}

func Positive(v float64) string {
	if v <= 0 {
		return "Invalid input. Please enter a positive number."
	}
	return ""
}
