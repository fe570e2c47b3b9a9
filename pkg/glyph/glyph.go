// Package glyph maps entry statuses and colors onto terminal symbols and
// styling attributes.
package glyph

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/weeklog/pkg/entry"
)

type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	italicCode = 3
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Italic(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, italicCode, in, escape, resetCode)
}

// ForStatus returns the display glyph for a status.
func ForStatus(s entry.Status) Glyph {
	switch s {
	case entry.Planned:
		return Glyph{Symbol: "○", Meaning: "planned, time not yet elapsed"}
	case entry.NeedsReview:
		return Glyph{Symbol: "⍰", Meaning: "plan elapsed, needs review"}
	case entry.Completed:
		return Glyph{Symbol: "✔", Meaning: "plan confirmed done"}
	case entry.Incomplete:
		return Glyph{Symbol: "✘", Meaning: "plan did not happen"}
	}
	return Glyph{Symbol: " ", Meaning: "logged, never planned"}
}

func (g Glyph) String() string {
	return g.Symbol
}

// StatusColor returns the color used to mark a status.
func StatusColor(s entry.Status) *color.Color {
	switch s {
	case entry.Planned:
		return color.New(color.FgBlue)
	case entry.NeedsReview:
		return color.New(color.FgRed, color.Bold)
	case entry.Completed:
		return color.New(color.FgGreen)
	case entry.Incomplete:
		return color.New(color.Faint)
	}
	return color.New()
}

// TagColor maps a palette color onto the nearest terminal attribute.
func TagColor(c entry.Color) *color.Color {
	switch c {
	case entry.White:
		return color.New(color.FgHiWhite)
	case entry.Gray:
		return color.New(color.FgHiBlack)
	case entry.Red:
		return color.New(color.FgRed)
	case entry.Orange:
		return color.New(color.FgHiRed)
	case entry.Yellow:
		return color.New(color.FgYellow)
	case entry.Green:
		return color.New(color.FgGreen)
	case entry.Blue:
		return color.New(color.FgBlue)
	case entry.Purple:
		return color.New(color.FgMagenta)
	}
	return color.New()
}
