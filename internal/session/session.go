// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the identity of the user logged in to the shell.
//
// State lives only in process memory for the lifetime of one shell. The
// backend is consulted exactly once per login to resolve the user's id; the
// id is never made up locally.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// LoginReminder is printed when a command needs a logged-in user.
const LoginReminder = "Please login first"

// User is the authenticated actor.
type User struct {
	ID       int64
	Username string
}

// LookupFunc resolves a username to its backend user id.
// ok is false when no such user exists.
type LookupFunc func(ctx context.Context, username string) (id int64, ok bool, err error)

// State tracks the current user. The zero value is logged out.
type State struct {
	user *User
}

// Login resolves username and makes it the current user. When the user does
// not exist, or the lookup fails, the current state is left as is.
func (s *State) Login(ctx context.Context, lookup LookupFunc, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}
	id, ok, err := lookup(ctx, username)
	if err != nil || !ok {
		return false, err
	}
	s.user = &User{ID: id, Username: username}
	return true, nil
}

// Logout clears the current user. It is safe to call when nobody is logged in.
func (s *State) Logout() {
	s.user = nil
}

// Current returns the logged-in user.
func (s *State) Current() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Active reports whether a user is logged in.
func (s *State) Active() bool {
	return s.user != nil
}

// Rename changes the current user's name. Call it only after the backend
// has accepted the rename.
func (s *State) Rename(username string) {
	if s.user == nil || username == "" {
		return
	}
	s.user.Username = username
}

// Require reports whether a user is logged in, printing LoginReminder to w
// when not.
func (s *State) Require(w io.Writer) bool {
	if s.Active() {
		return true
	}
	fmt.Fprintln(w, LoginReminder)
	return false
}
