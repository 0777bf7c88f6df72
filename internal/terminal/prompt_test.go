// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestPrompterReadsSequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("alice\nsecret\r\nhelp\n"), &out)

	if p.Interactive() {
		t.Fatalf("string reader must not be interactive")
	}

	user, err := p.ReadLine("Enter username: ")
	if err != nil || user != "alice" {
		t.Fatalf("ReadLine() = %q, %v", user, err)
	}
	pass, err := p.ReadPassword("Enter your password: ")
	if err != nil || pass != "secret" {
		t.Fatalf("ReadPassword() = %q, %v", pass, err)
	}

	// The remaining input stays available to the command loop.
	rest, err := p.Reader().ReadString('\n')
	if err != nil || rest != "help\n" {
		t.Fatalf("remaining input = %q, %v", rest, err)
	}

	if got, want := out.String(), "Enter username: Enter your password: "; got != want {
		t.Errorf("prompts = %q, want %q", got, want)
	}
}

func TestPrompterEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("last"), io.Discard)

	line, err := p.ReadLine("> ")
	if err != nil || line != "last" {
		t.Fatalf("ReadLine() = %q, %v; want final unterminated line", line, err)
	}
	if _, err := p.ReadLine("> "); err != io.EOF {
		t.Fatalf("ReadLine() at end = %v, want io.EOF", err)
	}
}
