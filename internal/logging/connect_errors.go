// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ConnectErrorType represents the category of a startup connection failure.
type ConnectErrorType int

const (
	ConnectErrorUnknown ConnectErrorType = iota
	ConnectErrorNetwork
	ConnectErrorAuth
	ConnectErrorDatabase
)

// ParseConnectError categorizes a failure by SQLSTATE code, or by message
// when the server never answered.
func ParseConnectError(code, desc string) ConnectErrorType {
	switch {
	case code == "28P01" || code == "28000":
		return ConnectErrorAuth
	case code == "3D000":
		return ConnectErrorDatabase
	case strings.HasPrefix(code, "08"):
		return ConnectErrorNetwork
	}

	lower := strings.ToLower(desc)
	if strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "timeout") || strings.Contains(lower, "dial") {
		return ConnectErrorNetwork
	}
	if strings.Contains(lower, "password authentication failed") {
		return ConnectErrorAuth
	}
	return ConnectErrorUnknown
}

// ConnectHint returns troubleshooting lines for a connection failure.
func ConnectHint(code, desc string) string {
	var builder strings.Builder

	switch ParseConnectError(code, desc) {
	case ConnectErrorAuth:
		builder.WriteString("The database rejected the credentials.\n")
		builder.WriteString("  • Check the username and password you entered\n")
	case ConnectErrorDatabase:
		builder.WriteString("The configured database does not exist on the server.\n")
		builder.WriteString("  • Check --database or the \"database\" config setting\n")
	case ConnectErrorNetwork:
		builder.WriteString("The database server could not be reached.\n")
		builder.WriteString("  • Check --host and --port\n")
		builder.WriteString("  • Make sure the server is running and accepting connections\n")
	default:
		return ""
	}

	builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("→ Run 'cubes dbinfo' to see the connection target"))
	return builder.String()
}

// PresentConnectError prints the uniform failure line followed by an optional hint.
func PresentConnectError(code, desc string) {
	fmt.Printf("Error: %s: %s\n", code, Mask(desc))
	if hint := ConnectHint(code, desc); hint != "" {
		pterm.Println()
		pterm.Println(hint)
	}
}
