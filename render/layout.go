package render

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/museun/streamchat/ircwire"
)

// Fringe is a decorative glyph rendered at the start/end of wrapped
// continuation rows, with the color it should be printed in.
type Fringe struct {
	Glyph string
	Color ircwire.RGB
}

// Config holds the per-client layout parameters from spec.md §4.7.
type Config struct {
	Width   int
	NickMax int
	Left    Fringe
	Right   Fringe
}

// Line is one rendered output row: the plain text plus which fringe (if
// any) decorates it, so the caller can apply ANSI color around the glyph
// without this package needing a terminal-color dependency.
type Line struct {
	Text       string
	LeftFringe bool
	RightPad   int // columns to right-pad with spaces before the right fringe
	RightFringe bool
}

// Layout computes the nick-truncated, word-wrapped, fringe-decorated
// display lines for one record.
func Layout(cfg Config, name, data string, isAction bool) (nick string, lines []Line) {
	nick = TruncateNick(name, cfg.NickMax)

	budget := cfg.Width - cfg.NickMax - runewidth.StringWidth(cfg.Left.Glyph) - runewidth.StringWidth(cfg.Right.Glyph) - 3
	if budget < 1 {
		budget = 1
	}

	wrapped := Wrap(data, budget)

	sep := ": "
	if isAction {
		sep = " "
	}

	pad := strings.Repeat(" ", cfg.NickMax+3)

	for i, text := range wrapped {
		last := i == len(wrapped)-1
		if i == 0 {
			prefix := fitRight(nick, cfg.NickMax) + sep
			lines = append(lines, Line{
				Text:        prefix + text,
				RightFringe: !last,
				RightPad:    rightPad(budget, text),
			})
			continue
		}
		lines = append(lines, Line{
			Text:        pad + text,
			LeftFringe:  true,
			RightFringe: !last,
			RightPad:    rightPad(budget, text),
		})
	}
	return nick, lines
}

func rightPad(budget int, text string) int {
	w := budget - runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	return w
}

func fitRight(nick string, width int) string {
	w := runewidth.StringWidth(nick)
	if w >= width {
		return nick
	}
	return strings.Repeat(" ", width-w) + nick
}
