// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package repl

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Input
		wantErr bool
	}{
		{name: "empty", line: "", want: Input{}},
		{name: "whitespace only", line: " \t  ", want: Input{}},
		{name: "bare command", line: "list_sessions", want: Input{Command: "list_sessions", Args: []string{}}},
		{name: "arguments", line: "login alice", want: Input{Command: "login", Args: []string{"alice"}}},
		{name: "extra spacing", line: "  add_solve   5  12.5 ", want: Input{Command: "add_solve", Args: []string{"5", "12.5"}}},
		{
			name: "double quoted scramble",
			line: `add_round "U2 D2 L2 R2" 5`,
			want: Input{Command: "add_round", Args: []string{"U2 D2 L2 R2", "5"}},
		},
		{
			name: "single quoted note",
			line: `create_note 'work on F2L lookahead'`,
			want: Input{Command: "create_note", Args: []string{"work on F2L lookahead"}},
		},
		{
			name: "prime moves inside double quotes",
			line: `add_round "R U R' U'" 3`,
			want: Input{Command: "add_round", Args: []string{"R U R' U'", "3"}},
		},
		{name: "empty quoted argument", line: `change_penalty 4 ""`, want: Input{Command: "change_penalty", Args: []string{"4", ""}}},
		{name: "unterminated double quote", line: `create_note "forgot to close`, wantErr: true},
		{name: "unterminated single quote", line: `add_round 'R U 3`, wantErr: true},
		{name: "trailing backslash", line: `login alice\`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Parse() error = %v, want *ParseError", err)
				}
				if pe.Input != tt.line {
					t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got.Command != tt.want.Command || !reflect.DeepEqual(append([]string{}, got.Args...), append([]string{}, tt.want.Args...)) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseErrorReason(t *testing.T) {
	_, err := Parse(`create_note "oops`)
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "could not parse input: unterminated double quote"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
