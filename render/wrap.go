// Package render implements the client-side terminal layout algorithm:
// nick truncation, word-bounded line wrapping, and fringe-decorated
// continuation rows.
package render

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemes splits s into its grapheme clusters, in order.
func graphemes(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// TruncateNick truncates name to at most max grapheme clusters, replacing
// the final visible cluster with "…" when truncation occurs.
func TruncateNick(name string, max int) string {
	clusters := graphemes(name)
	if len(clusters) <= max || max <= 0 {
		return name
	}
	if max == 1 {
		return "…"
	}
	var out string
	for _, c := range clusters[:max-1] {
		out += c
	}
	return out + "…"
}

// words splits s into Unicode word-boundary segments via uniseg, each
// either a run of content or a run of whitespace, so callers can discard
// leading whitespace on wrapped lines. This walks real word boundaries
// (handling punctuation, CJK, and combining marks correctly) rather than
// ASCII-space runs.
func words(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		out = append(out, word)
	}
	return out
}

// Wrap partitions data into lines of display width <= maxWidth, walking
// word boundaries; a single word exceeding maxWidth is split at grapheme
// boundaries. Leading whitespace at the start of a wrapped line is dropped.
func Wrap(data string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	var lines []string
	var line string
	lineWidth := 0

	flush := func() {
		lines = append(lines, line)
		line = ""
		lineWidth = 0
	}

	for _, tok := range words(data) {
		tokWidth := runewidth.StringWidth(tok)
		isSpace := strings.TrimSpace(tok) == ""

		if tokWidth > maxWidth && tokWidth > 0 {
			// a single token longer than the budget: hard-split at grapheme
			// boundaries, filling the current line first.
			for _, g := range graphemes(tok) {
				gw := runewidth.StringWidth(g)
				gIsSpace := strings.TrimSpace(g) == ""
				if lineWidth+gw > maxWidth {
					flush()
					if gIsSpace {
						continue
					}
				}
				line += g
				lineWidth += gw
			}
			continue
		}

		if lineWidth+tokWidth > maxWidth {
			flush()
			if isSpace {
				continue
			}
		}
		if line == "" && isSpace {
			continue
		}
		line += tok
		lineWidth += tokWidth
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
