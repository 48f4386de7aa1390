// Package prompt implements the blocking prompt-retry helpers of the
// interactive session. Every helper loops until the input satisfies its
// predicate; there is no attempt cap and no cancel keyword. The only ways
// out of a prompt are valid input, end of input, or a user interrupt.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// ErrInterrupted is returned from a blocking prompt when an interrupt signal
// arrives while it is waiting for input. Callers decide the scope of the
// interrupt: the session menu swallows it, everything else treats it as the
// end of the session.
var ErrInterrupted = errors.New("interrupted")

type lineResult struct {
	text string
	err  error
}

// Prompter reads user input line by line and writes prompts to out.
//
// Reads happen on a demand-driven goroutine so a blocking read can lose a
// race against the interrupt channel without wedging the next prompt: if a
// read is interrupted, the outstanding read is simply consumed by the next
// prompt instead of issuing a new one.
//
// Prompter is not safe for concurrent use; the session is single-threaded.
type Prompter struct {
	out        io.Writer
	requests   chan struct{}
	lines      chan lineResult
	interrupts <-chan os.Signal
	pending    bool

	isTerminal bool
	stdinFd    int

	// readPassword is a test seam for term.ReadPassword.
	readPassword func(fd int) ([]byte, error)
}

// New creates a Prompter reading from r and writing prompts to w. interrupts
// may be nil, in which case prompts block until input arrives or r ends.
func New(r io.Reader, w io.Writer, interrupts <-chan os.Signal) *Prompter {
	p := &Prompter{
		out:          w,
		requests:     make(chan struct{}),
		lines:        make(chan lineResult),
		interrupts:   interrupts,
		readPassword: term.ReadPassword,
	}

	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.isTerminal = true
		p.stdinFd = int(f.Fd())
	}

	br := bufio.NewReader(r)
	go func() {
		for range p.requests {
			line, err := br.ReadString('\n')
			if err != nil {
				// A partial line at EOF still counts as input.
				if errors.Is(err, io.EOF) && len(line) > 0 {
					p.lines <- lineResult{text: strings.TrimRight(line, "\r\n")}
					continue
				}
				p.lines <- lineResult{err: err}
				continue
			}
			p.lines <- lineResult{text: strings.TrimRight(line, "\r\n")}
		}
	}()

	return p
}

func (p *Prompter) readLine() (string, error) {
	if !p.pending {
		p.requests <- struct{}{}
		p.pending = true
	}

	select {
	case res := <-p.lines:
		p.pending = false
		return res.text, res.err
	case <-p.interrupts:
		return "", ErrInterrupted
	}
}

// NonEmptyString prompts until the user enters a value that is not empty or
// whitespace-only. The returned value is trimmed.
func (p *Prompter) NonEmptyString(promptText, errMsg string) (string, error) {
	for {
		fmt.Fprint(p.out, promptText)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, errMsg)
	}
}

// Numeric prompts until the input parses as a number satisfying the flags:
// allowZero admits zero, allowDecimal admits fractional values, and
// allowNegative admits values below zero.
func (p *Prompter) Numeric(promptText, errMsg string, allowZero, allowDecimal, allowNegative bool) (decimal.Decimal, error) {
	for {
		fmt.Fprint(p.out, promptText)
		line, err := p.readLine()
		if err != nil {
			return decimal.Zero, err
		}
		n, perr := decimal.NewFromString(strings.TrimSpace(line))
		if perr == nil && numericAllowed(n, allowZero, allowDecimal, allowNegative) {
			return n, nil
		}
		fmt.Fprintln(p.out, errMsg)
	}
}

func numericAllowed(n decimal.Decimal, allowZero, allowDecimal, allowNegative bool) bool {
	if !allowZero && n.IsZero() {
		return false
	}
	if !allowDecimal && !n.IsInteger() {
		return false
	}
	if !allowNegative && n.IsNegative() {
		return false
	}
	return true
}

// FromOptions prompts until the input matches one of the options,
// case-insensitively. The canonical option from the set is returned, not
// what the user typed.
func (p *Prompter) FromOptions(promptText string, options []string) (string, error) {
	for {
		fmt.Fprint(p.out, promptText)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		in := strings.TrimSpace(line)
		for _, opt := range options {
			if strings.EqualFold(in, opt) {
				return opt, nil
			}
		}
		fmt.Fprintf(p.out, "Please enter one of: %s\n", strings.Join(options, ", "))
	}
}

// Optional reads a single line that may be left blank. The caller decides
// what a blank answer means (keep the previous value, use a placeholder).
func (p *Prompter) Optional(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret reads a line without echoing it when stdin is a terminal. On
// non-terminal input (tests, pipes) it falls back to a plain line read.
func (p *Prompter) Secret(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	if p.isTerminal {
		pw, err := p.readPassword(p.stdinFd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	return p.readLine()
}
