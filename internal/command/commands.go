// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package command

import (
	"context"

	"cubes/cli/internal/gateway"
	"cubes/cli/internal/session"
)

// UserNotFound is printed when login names an unknown user.
const UserNotFound = "User does not exist"

// Builtin returns the registry of all shell commands. Arguments are passed
// to procedures in the order the procedures declare them.
func Builtin() *Registry {
	r := NewRegistry()

	// Account
	r.Register(Descriptor{Name: "login", Params: Params("username"), Description: "login via username", Run: login})
	r.Register(Descriptor{Name: "logout", Description: "reset current user", Run: logout})
	r.Register(Descriptor{Name: "current_user", Description: "check current user", Gated: true, Run: currentUser})
	r.Register(Descriptor{Name: "create_user", Params: Params("username"), Description: "add a new user to the database",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "create_user", args[0])
		}})
	r.Register(Descriptor{Name: "delete_account", Description: "delete the current user and log out", Gated: true, Run: deleteAccount})
	r.Register(Descriptor{Name: "update_username", Params: Params("new_username"), Description: "rename the current user", Gated: true, Run: updateUsername})

	// Friends
	r.Register(Descriptor{Name: "find_friends", Description: "see friends of the current user", Gated: true, Run: findFriends})
	r.Register(Descriptor{Name: "add_friend", Params: Params("friend_name"), Description: "add a friend", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "add_friend", env.User().Username, args[0])
		}})
	r.Register(Descriptor{Name: "remove_friend", Params: Params("friend_name"), Description: "remove a friend", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "remove_friend", env.User().Username, args[0])
		}})

	// Sessions
	r.Register(Descriptor{Name: "create_session", Params: Params("session_name", "cube_type"), Description: "create a timing session",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return create(ctx, env, "create_session", args[0], args[1])
		}})
	r.Register(Descriptor{Name: "list_sessions", Description: "list all sessions",
		Run: func(ctx context.Context, env *Env, _ []string) (Result, error) {
			return list(ctx, env, "list_sessions")
		}})
	r.Register(Descriptor{Name: "change_session_name", Params: Params("session_id", "new_name"), Description: "rename a session",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "change_session_name", args[0], args[1])
		}})
	r.Register(Descriptor{Name: "delete_session", Params: Params("session_id"), Description: "delete a session",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "delete_session", args[0])
		}})

	// Rounds
	r.Register(Descriptor{Name: "add_round", Params: Params("scramble", "session_id"), Description: "add a round to a session",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return create(ctx, env, "add_round", args[0], args[1])
		}})
	r.Register(Descriptor{Name: "list_rounds", Params: Params("session_id"), Description: "list the rounds of a session",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return list(ctx, env, "list_rounds", args[0])
		}})
	r.Register(Descriptor{Name: "delete_round", Params: Params("round_id"), Description: "delete a round",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "delete_round", args[0])
		}})
	r.Register(Descriptor{Name: "get_winner", Params: Params("round_id"), Description: "show the fastest solve of a round",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return list(ctx, env, "get_winner", args[0])
		}})

	// Solves
	r.Register(Descriptor{Name: "add_solve", Params: Params("round_id", "time", "[penalty]"), Description: "record a solve for the current user", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return create(ctx, env, "add_solve", env.User().ID, args[0], args[1], optional(args, 2))
		}})
	r.Register(Descriptor{Name: "list_solves", Params: Params("round_id"), Description: "list the solves of a round",
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return list(ctx, env, "list_solves", args[0])
		}})
	r.Register(Descriptor{Name: "my_solves", Description: "list the current user's solves", Gated: true,
		Run: func(ctx context.Context, env *Env, _ []string) (Result, error) {
			return list(ctx, env, "find_solves_for_user", env.User().Username)
		}})
	r.Register(Descriptor{Name: "my_average_of_5", Description: "average of the current user's last five solves", Gated: true,
		Run: func(ctx context.Context, env *Env, _ []string) (Result, error) {
			return list(ctx, env, "average_of_5", env.User().Username)
		}})
	r.Register(Descriptor{Name: "change_penalty", Params: Params("solve_id", "[penalty]"), Description: "set or clear the penalty of a solve", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "change_penalty", env.User().ID, args[0], optional(args, 1))
		}})

	// Notes
	r.Register(Descriptor{Name: "create_note", Params: Params("note_text"), Description: "write a note", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return create(ctx, env, "create_note", env.User().ID, args[0])
		}})
	r.Register(Descriptor{Name: "list_notes", Description: "list the current user's notes", Gated: true,
		Run: func(ctx context.Context, env *Env, _ []string) (Result, error) {
			return list(ctx, env, "list_notes", env.User().ID)
		}})
	r.Register(Descriptor{Name: "update_note", Params: Params("note_id", "note_text"), Description: "replace the text of a note", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "update_note", env.User().ID, args[0], args[1])
		}})
	r.Register(Descriptor{Name: "delete_note", Params: Params("note_id"), Description: "delete a note", Gated: true,
		Run: func(ctx context.Context, env *Env, args []string) (Result, error) {
			return exec(ctx, env, "delete_note", env.User().ID, args[0])
		}})

	return r
}

func login(ctx context.Context, env *Env, args []string) (Result, error) {
	ok, err := env.Session.Login(ctx, lookupUser(env.Gateway), args[0])
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Scalar(UserNotFound), nil
	}
	return Success(), nil
}

func lookupUser(gw gateway.Gateway) session.LookupFunc {
	return func(ctx context.Context, username string) (int64, bool, error) {
		rows, err := gw.Invoke(ctx, "get_user_id", username)
		if err != nil {
			return 0, false, err
		}
		if len(rows) == 0 {
			return 0, false, nil
		}
		id, ok := gateway.Int64(rows[0].First())
		return id, ok, nil
	}
}

func logout(_ context.Context, env *Env, _ []string) (Result, error) {
	env.Session.Logout()
	return Success(), nil
}

func currentUser(_ context.Context, env *Env, _ []string) (Result, error) {
	return Scalar(env.User().Username), nil
}

func deleteAccount(ctx context.Context, env *Env, _ []string) (Result, error) {
	if _, err := env.Gateway.Invoke(ctx, "remove_user", env.User().Username); err != nil {
		return Result{}, err
	}
	env.Session.Logout()
	return Success(), nil
}

// updateUsername renames locally only once the backend accepted the rename.
func updateUsername(ctx context.Context, env *Env, args []string) (Result, error) {
	if _, err := env.Gateway.Invoke(ctx, "update_username", env.User().Username, args[0]); err != nil {
		return Result{}, err
	}
	env.Session.Rename(args[0])
	return Success(), nil
}

func findFriends(ctx context.Context, env *Env, _ []string) (Result, error) {
	rows, err := env.Gateway.Invoke(ctx, "find_friends", env.User().Username)
	if err != nil {
		return Result{}, err
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		v, ok := r.Get("username")
		if !ok {
			v = r.First()
		}
		names = append(names, gateway.FormatValue(v))
	}
	return Lines(names...), nil
}

// exec runs a procedure for its side effect.
func exec(ctx context.Context, env *Env, procedure string, args ...any) (Result, error) {
	if _, err := env.Gateway.Invoke(ctx, procedure, args...); err != nil {
		return Result{}, err
	}
	return Success(), nil
}

// create runs a procedure that may return the id of what it created.
func create(ctx context.Context, env *Env, procedure string, args ...any) (Result, error) {
	rows, err := env.Gateway.Invoke(ctx, procedure, args...)
	if err != nil {
		return Result{}, err
	}
	if len(rows) > 0 {
		// void functions come back as a single empty value
		if v := rows[0].First(); v != nil && v != "" {
			return Scalar(v), nil
		}
	}
	return Success(), nil
}

func list(ctx context.Context, env *Env, procedure string, args ...any) (Result, error) {
	rows, err := env.Gateway.Invoke(ctx, procedure, args...)
	if err != nil {
		return Result{}, err
	}
	return Rows(rows), nil
}

// optional returns args[i], or nil (NULL) when the argument was omitted.
func optional(args []string, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
