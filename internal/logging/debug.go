// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// VerboseEnv is the environment flag that turns on debug output for all packages.
const VerboseEnv = "CUBES_VERBOSE"

var (
	debugMu  sync.Mutex
	debugOut io.Writer = os.Stderr
)

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	return os.Getenv(VerboseEnv) == "1"
}

// SetVerbose enables or disables debug output process-wide.
func SetVerbose(on bool) {
	if on {
		os.Setenv(VerboseEnv, "1")
		return
	}
	os.Unsetenv(VerboseEnv)
}

// SetDebugOutput redirects debug lines; it returns the previous writer.
func SetDebugOutput(w io.Writer) io.Writer {
	debugMu.Lock()
	defer debugMu.Unlock()
	prev := debugOut
	debugOut = w
	return prev
}

// Debugf writes a masked "[DEBUG] component: ..." line when verbose mode is on.
func Debugf(component, format string, args ...any) {
	if !Verbose() {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	fmt.Fprintf(debugOut, "[DEBUG] %s: %s\n", component, Mask(fmt.Sprintf(format, args...)))
}
