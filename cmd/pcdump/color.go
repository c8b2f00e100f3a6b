package main

import (
	"github.com/fatih/color"
)

// colorPrinter wraps fatih/color functions for consistent color output.
type colorPrinter struct {
	red    *color.Color
	yellow *color.Color
}

// newColorPrinter creates a new colorPrinter with optional color disabling.
func newColorPrinter(noColor bool) *colorPrinter {
	if noColor {
		color.NoColor = true
	}

	return &colorPrinter{
		red:    color.New(color.FgRed, color.Bold),
		yellow: color.New(color.FgYellow),
	}
}

// Red returns a red-colored string.
func (c *colorPrinter) Red(s string) string { return c.red.Sprint(s) }

// Yellow returns a yellow-colored string.
func (c *colorPrinter) Yellow(s string) string { return c.yellow.Sprint(s) }
