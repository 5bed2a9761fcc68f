// +build tools

package tools

// Keeps the tools used by go:generate in the module graph.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
