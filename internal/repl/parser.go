// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package repl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Input is one parsed line. Command is empty for a blank line.
type Input struct {
	Command string
	Args    []string
}

// Empty reports whether the line held no command.
func (in Input) Empty() bool { return in.Command == "" }

// ParseError reports a line that could not be split into words.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse input: %s", e.Reason)
}

// Parse splits line into a command and its arguments. Words are separated
// by whitespace; single or double quotes group words into one argument and
// are removed. Arguments are always returned as strings.
func Parse(line string) (Input, error) {
	if strings.TrimSpace(line) == "" {
		return Input{}, nil
	}
	words, err := shellquote.Split(line)
	if err != nil {
		return Input{}, &ParseError{Input: line, Reason: reason(err)}
	}
	if len(words) == 0 {
		return Input{}, nil
	}
	return Input{Command: words[0], Args: words[1:]}, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, shellquote.UnterminatedSingleQuoteError):
		return "unterminated single quote"
	case errors.Is(err, shellquote.UnterminatedDoubleQuoteError):
		return "unterminated double quote"
	case errors.Is(err, shellquote.UnterminatedEscapeError):
		return "trailing backslash"
	default:
		return err.Error()
	}
}
