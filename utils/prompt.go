package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	animationQuestion       = "Would you like to see an animation (Y) Or step-by-step (N)? "
	moreGenerationsQuestion = "Would you like to continue? (Y/N) "
	invalidAnswer           = "Invalid answer: please try again:"
)

// ErrInputClosed is returned when input ends before a valid answer is given
var ErrInputClosed = errors.New("input closed")

type line struct {
	text string
	err  error
}

// Prompter asks yes/no questions on out and reads the answers from in.
// Input is consumed by a background goroutine so a pending question can be
// abandoned when its context is cancelled.
type Prompter struct {
	out   io.Writer
	lines <-chan line
}

// NewPrompter starts reading lines from in
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan line)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- line{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			lines <- line{err: err}
		}
	}()
	return &Prompter{out: out, lines: lines}
}

// AskYesNo prints question until the first word of an answer starts with
// Y/y (true) or N/n (false). Blank lines are ignored.
func (p *Prompter) AskYesNo(ctx context.Context, question string) (bool, error) {
	fmt.Fprint(p.out, question)
	for {
		var (
			l  line
			ok bool
		)
		select {
		case <-ctx.Done():
			return false, errors.Wrap(ctx.Err(), "[AskYesNo] prompt abandoned")
		case l, ok = <-p.lines:
		}

		if !ok {
			return false, ErrInputClosed
		}
		if l.err != nil {
			return false, errors.Wrap(l.err, "[AskYesNo] failed to read answer")
		}

		fields := strings.Fields(l.text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0][0] {
		case 'Y', 'y':
			return true, nil
		case 'N', 'n':
			return false, nil
		}
		fmt.Fprintln(p.out, invalidAnswer)
		fmt.Fprint(p.out, question)
	}
}

// AnimationPrompt asks whether generations should be animated rather than stepped
func (p *Prompter) AnimationPrompt(ctx context.Context) (bool, error) {
	return p.AskYesNo(ctx, animationQuestion)
}

// MoreGenerationsPrompt asks whether another generation should be shown
func (p *Prompter) MoreGenerationsPrompt(ctx context.Context) (bool, error) {
	return p.AskYesNo(ctx, moreGenerationsQuestion)
}
