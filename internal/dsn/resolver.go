// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"

	"cubes/cli/internal/config"
)

// Source names where a connection target came from.
type Source string

const (
	SourceEnv    Source = "environment"
	SourceConfig Source = "config"
)

// Resolve picks the connection target: an explicit DSN (from CUBES_DSN or
// DATABASE_URL) wins over the individual host/port/database settings. A
// configured default user is applied when the DSN has none.
func Resolve(db config.DBConfig) (*Info, Source, error) {
	var (
		info *Info
		src  Source
		err  error
	)
	if strings.TrimSpace(db.DSN) != "" {
		info, err = Parse(db.DSN)
		src = SourceEnv
	} else {
		info, err = FromFields(db.Host, db.Port, db.Database, db.SSLMode)
		src = SourceConfig
	}
	if err != nil {
		return nil, src, err
	}
	if info.User == "" && db.User != "" {
		info = info.WithCredentials(db.User, info.Password)
	}
	return info, src, nil
}
