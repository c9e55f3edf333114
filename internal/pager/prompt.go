package pager

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Prompt reads whitespace-delimited menu choices from an input stream.
type Prompt struct {
	scanner *bufio.Scanner
}

// NewPrompt wraps r. Several choices on one line are consumed one per read.
func NewPrompt(r io.Reader) *Prompt {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Prompt{scanner: s}
}

// ReadChoice blocks for the next token and parses it as a whole number.
// A read failure, end of input, or a non-numeric token yields an error
// wrapping ErrMalformedInput.
func (p *Prompt) ReadChoice() (int, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}
		return 0, fmt.Errorf("%w: end of input", ErrMalformedInput)
	}

	token := p.scanner.Text()
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, token)
	}
	return n, nil
}
