package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveInputs makes every argument absolute and checks that it exists and
// has one of the accepted extensions.
func resolveInputs(args []string, exts ...string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", arg)
		}
		ext := strings.ToLower(filepath.Ext(abs))
		ok := false
		for _, e := range exts {
			if ext == e {
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("unsupported file type %q for %s (want %s)", ext, arg, strings.Join(exts, ", "))
		}
		out = append(out, abs)
	}
	return out, nil
}

// checkOutput rejects an explicit output path for several inputs, which would
// all be written to the same file.
func checkOutput(output string, inputs int) error {
	if output != "" && inputs > 1 {
		return fmt.Errorf("--output can only be used with a single input, got %d", inputs)
	}
	return nil
}
