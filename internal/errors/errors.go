// Package errors renders command failures for the operator: a uniform
// "Error: " line on stderr, with the underlying cause recorded in the log
// file for later diagnosis.
package errors

import (
	"fmt"
	"os"

	"github.com/ykhara/lamiope/internal/logger"
)

// Format renders an error with the uniform "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf renders a formatted message with the uniform "Error: " prefix.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the failure, prints it for the operator, and exits with code 1.
// A nil error is a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal with a format string.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
