package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rayyanquantum/rayui/internal/errors"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// printError writes err and any valid options it carries.
func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "\n❌ %s\n", errors.FormatErrorWithSuggestions(err))
}

func bullet(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "   • "+format+"\n", args...)
}
