// Command fgctl checks packages with fieldguard rules and lists the rules.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}

		fmt.Fprintln(os.Stderr, "fgctl:", err)
		os.Exit(2)
	}
}

// exitError ends the process with the given code and no message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
