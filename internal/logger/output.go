package logger

import (
	"fmt"

	"github.com/fatih/color"
)

// CLI output functions. These print user-facing text to stdout and are
// separate from structured logging (Debug, Info, etc.), which goes to stderr.

var (
	successColor = color.New(color.FgGreen).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	headerColor  = color.New(color.FgWhite, color.Bold).SprintFunc()
)

// Print prints a plain user-facing line
func Print(format string, a ...interface{}) {
	fmt.Printf(format+"\n", a...)
}

// Header prints a bold section header
func Header(text string) {
	fmt.Println(headerColor(text))
}

// Blank prints an empty line
func Blank() {
	fmt.Println()
}

// Success prints a success message (green check)
func Success(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", successColor("✓"), fmt.Sprintf(format, a...))
}

// PrintError prints a user-facing error message (red cross)
func PrintError(format string, a ...interface{}) {
	fmt.Printf("%s %s\n", errorColor("✗"), fmt.Sprintf(format, a...))
}
