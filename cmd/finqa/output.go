package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow, color.Bold)
)

func header(w io.Writer, text string) {
	line := strings.Repeat("=", 60)
	yellow.Fprintf(w, "%s\n  %s\n%s\n", line, text, line)
}

func pass(w io.Writer, step string) {
	green.Fprint(w, "PASS")
	fmt.Fprintf(w, "  %s\n", step)
}

func fail(w io.Writer, step, reason string) {
	red.Fprint(w, "FAIL")
	fmt.Fprintf(w, "  %s\n", step)
	for _, line := range strings.Split(reason, "\n") {
		fmt.Fprintf(w, "        %s\n", line)
	}
}

func printError(w io.Writer, err error) {
	red.Fprintf(w, "Error: %s\n", err)
}
