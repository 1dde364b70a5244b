package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for input on the terminal.
type Prompter interface {
	// ReadLine prints prompt and returns the next line without its line
	// terminator.
	ReadLine(prompt string) (string, error)

	// ReadPassword is ReadLine without echo when the input is a terminal.
	ReadPassword(prompt string) (string, error)
}

type terminalPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewPrompter returns a Prompter reading from in and printing prompts to out.
// Input that is not a terminal (a pipe in scripts and tests) is read line by
// line and echo suppression is skipped.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	return &terminalPrompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", ErrEmptyInput
	}
	return line, nil
}

func (p *terminalPrompter) ReadPassword(prompt string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return p.ReadLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return "", ErrEmptyInput
	}
	return string(pw), nil
}
