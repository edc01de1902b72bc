package config

import (
	"fmt"
	"log"
	"os"
)

// ExitCodeConfig is the process status for configuration failures.
const ExitCodeConfig = 1

// Exitf writes a configuration failure to stderr under the standard logger's
// prefix and terminates with ExitCodeConfig.
func Exitf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, log.Prefix()+fmt.Sprintf(format, args...))
	os.Exit(ExitCodeConfig)
}
