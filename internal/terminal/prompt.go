// Package terminal provides line-oriented prompts on the controlling terminal,
// including password input that is not echoed.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers from a shared buffered reader so that prompts and the
// command loop never lose each other's buffered input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the file descriptor used for non-echo reads, or -1 when input is
	// not a terminal.
	fd int
}

// NewPrompter wraps in and out. When in is an *os.File attached to a terminal,
// passwords are read with echo disabled.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{out: out, fd: -1}
	if br, ok := in.(*bufio.Reader); ok {
		p.in = br
	} else {
		p.in = bufio.NewReader(in)
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// Reader exposes the underlying buffered reader for the command loop.
func (p *Prompter) Reader() *bufio.Reader { return p.in }

// Interactive reports whether input comes from a terminal.
func (p *Prompter) Interactive() bool { return p.fd >= 0 }

// ReadLine prints prompt and returns the next line without its line ending.
// io.EOF is returned only when nothing was read.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prints prompt and reads a secret. On a terminal echo is off;
// otherwise the next input line is used as-is.
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	if p.fd < 0 {
		return p.ReadLine(prompt)
	}
	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
