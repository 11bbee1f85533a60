package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/museun/streamchat/chatmsg"
	"github.com/museun/streamchat/ircwire"
	"github.com/museun/streamchat/render"
)

// UseColor reports whether ANSI color should be emitted, honoring NO_COLOR
// per spec.md §6.
func UseColor() bool {
	return os.Getenv("NO_COLOR") == ""
}

const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	clearScreen    = "\x1b[2J\x1b[H"
)

// ClearScreen erases the terminal and homes the cursor, used before a full
// scrollback redraw on resize.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, clearScreen)
}

// EnterAltScreen switches the terminal to the alternate screen buffer.
func EnterAltScreen(w io.Writer) {
	fmt.Fprint(w, enterAltScreen)
}

// ExitAltScreen restores the primary screen buffer.
func ExitAltScreen(w io.Writer) {
	fmt.Fprint(w, exitAltScreen)
}

func ansiFg(rgb ircwire.RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", rgb.R, rgb.G, rgb.B)
}

const ansiReset = "\x1b[0m"

// Print renders one record to w using cfg and the effective color, applying
// ANSI 24-bit color unless useColor is false.
func Print(w io.Writer, cfg render.Config, msg chatmsg.Message, useColor bool) {
	color := msg.EffectiveColor()
	nick, lines := render.Layout(cfg, msg.Name, msg.Data, msg.IsAction)
	_ = nick

	for _, line := range lines {
		var b strings.Builder
		if line.LeftFringe {
			if useColor {
				b.WriteString(ansiFg(cfg.Left.Color))
			}
			b.WriteString(cfg.Left.Glyph)
			if useColor {
				b.WriteString(ansiReset)
			}
		}
		if useColor {
			b.WriteString(colorizeNick(line.Text, color))
		} else {
			b.WriteString(line.Text)
		}
		if line.RightFringe {
			b.WriteString(strings.Repeat(" ", line.RightPad))
			if useColor {
				b.WriteString(ansiFg(cfg.Right.Color))
			}
			b.WriteString(cfg.Right.Glyph)
			if useColor {
				b.WriteString(ansiReset)
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

// RedrawAll clears the screen and reprints every buffered message under the
// current layout, used after a terminal resize so earlier messages rewrap
// to the new width instead of staying frozen at the old one.
func RedrawAll(w io.Writer, cfg render.Config, sb *Scrollback, useColor bool) {
	ClearScreen(w)
	for _, msg := range sb.All() {
		Print(w, cfg, msg, useColor)
	}
}

// colorizeNick is a best-effort wrap: the nick-bearing first portion of a
// rendered line is colored with the message's effective color. Because
// render.Line only carries already-composed text, this wraps the full line;
// per-segment coloring of just the nick is left to a richer Line type if
// finer control is ever needed.
func colorizeNick(text string, color ircwire.RGB) string {
	return ansiFg(color) + text + ansiReset
}
