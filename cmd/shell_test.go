// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"testing"

	"cubes/cli/internal/config"
	"cubes/cli/internal/dsn"
)

type scripted struct {
	lines     []string
	passwords []string
	asked     []string
}

func (s *scripted) ReadLine(prompt string) (string, error) {
	s.asked = append(s.asked, prompt)
	if len(s.lines) == 0 {
		return "", errors.New("no more input")
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func (s *scripted) ReadPassword(prompt string) (string, error) {
	s.asked = append(s.asked, prompt)
	if len(s.passwords) == 0 {
		return "", errors.New("no more input")
	}
	p := s.passwords[0]
	s.passwords = s.passwords[1:]
	return p, nil
}

func mustInfo(t *testing.T, raw string) *dsn.Info {
	t.Helper()
	info, err := dsn.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return info
}

func TestCollectCredentials(t *testing.T) {
	tests := []struct {
		name      string
		dsn       string
		p         *scripted
		wantUser  string
		wantPass  string
		wantAsked int
	}{
		{
			name:      "prompts for both",
			dsn:       "postgres://localhost:5432/cubes",
			p:         &scripted{lines: []string{" alice "}, passwords: []string{"s3cret"}},
			wantUser:  "alice",
			wantPass:  "s3cret",
			wantAsked: 2,
		},
		{
			name:      "user already known",
			dsn:       "postgres://bob@localhost:5432/cubes",
			p:         &scripted{passwords: []string{"pw"}},
			wantUser:  "bob",
			wantPass:  "pw",
			wantAsked: 1,
		},
		{
			name:      "password in dsn",
			dsn:       "postgres://bob:pw@localhost:5432/cubes",
			p:         &scripted{},
			wantUser:  "bob",
			wantPass:  "pw",
			wantAsked: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectCredentials(tt.p, mustInfo(t, tt.dsn))
			if err != nil {
				t.Fatalf("collectCredentials() error: %v", err)
			}
			if got.User != tt.wantUser || got.Password != tt.wantPass {
				t.Errorf("credentials = %q/%q, want %q/%q", got.User, got.Password, tt.wantUser, tt.wantPass)
			}
			if len(tt.p.asked) != tt.wantAsked {
				t.Errorf("prompted %v, want %d prompt(s)", tt.p.asked, tt.wantAsked)
			}
		})
	}
}

func TestCollectCredentialsInputError(t *testing.T) {
	if _, err := collectCredentials(&scripted{}, mustInfo(t, "postgres://localhost/cubes")); err == nil {
		t.Fatal("expected an error when input ends")
	}
}

func TestConnFlagsApply(t *testing.T) {
	tests := []struct {
		name    string
		flags   connFlags
		wantDSN string
	}{
		{
			name:    "no flags keeps env dsn",
			wantDSN: "postgres://a@h/x",
		},
		{
			name:    "host flag drops env dsn",
			flags:   connFlags{host: "db.local"},
			wantDSN: "",
		},
		{
			name:    "user flag alone keeps env dsn",
			flags:   connFlags{user: "carol"},
			wantDSN: "postgres://a@h/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.DB.DSN = "postgres://a@h/x"
			tt.flags.apply(&cfg)
			if cfg.DB.DSN != tt.wantDSN {
				t.Errorf("DSN = %q, want %q", cfg.DB.DSN, tt.wantDSN)
			}
			if tt.flags.host != "" && cfg.DB.Host != tt.flags.host {
				t.Errorf("Host = %q, want %q", cfg.DB.Host, tt.flags.host)
			}
			if tt.flags.user != "" && cfg.DB.User != tt.flags.user {
				t.Errorf("User = %q, want %q", cfg.DB.User, tt.flags.user)
			}
		})
	}
}
