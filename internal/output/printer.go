// Package output provides console formatting for trends, reports and messages
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/NivBraz/trendstats/internal/models"
)

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// UseColors reports whether colors should be used for the current environment
func UseColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return !color.NoColor
}

// NewPrinter creates a printer writing to out and err
func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	return &Printer{
		out:       out,
		err:       err,
		useColors: useColors,
	}
}

// Out is the writer used for regular output
func (p *Printer) Out() io.Writer {
	return p.out
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, format+"\n", args...)
	}
}

// Print prints a plain message as is, without a trailing newline
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
	} else {
		fmt.Fprintf(p.out, "\n%s\n", title)
	}
}

// Trends prints the numbered trend list
func (p *Printer) Trends(trends []models.Trend) {
	p.Print("The top trends sorted by count are: \n\n")
	for i, trend := range trends {
		volume := "-"
		if trend.TweetVolume != nil {
			volume = fmt.Sprintf("%d", *trend.TweetVolume)
		}
		name := trend.Name
		if p.useColors {
			name = color.New(color.Bold).Sprint(name)
		}
		p.Print("\t%d: %s %s\n", i+1, name, volume)
	}
}
