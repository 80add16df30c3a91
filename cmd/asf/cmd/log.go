package cmd

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// printErr writes err in red when w is a terminal
func printErr(w io.Writer, err error) {
	style := termenv.NewOutput(w)
	fmt.Fprintln(w, style.String("Error: "+err.Error()).Foreground(termenv.ANSIBrightRed))
}
