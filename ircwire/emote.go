package ircwire

import (
	"strconv"
	"strings"
)

// EmoteRange is an inclusive character range (Start through End) in the
// original message text occupied by one instance of an emote.
type EmoteRange struct {
	Start uint16
	End   uint16
}

// Emote is an inline image reference with a numeric id and the ranges of the
// message text it occupies.
type Emote struct {
	ID     uint32
	Ranges []EmoteRange
}

// ParseEmotes parses the "emotes" tag value:
// "id:start-end,start-end/id:start-end". Malformed segments are skipped.
func ParseEmotes(value string) []Emote {
	if value == "" {
		return nil
	}
	var emotes []Emote
	for _, group := range strings.Split(value, "/") {
		if group == "" {
			continue
		}
		idStr, rangesStr, ok := strings.Cut(group, ":")
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			continue
		}
		emote := Emote{ID: uint32(id)}
		for _, rangeStr := range strings.Split(rangesStr, ",") {
			startStr, endStr, ok := strings.Cut(rangeStr, "-")
			if !ok {
				continue
			}
			start, err := strconv.ParseUint(startStr, 10, 16)
			if err != nil {
				continue
			}
			end, err := strconv.ParseUint(endStr, 10, 16)
			if err != nil {
				continue
			}
			emote.Ranges = append(emote.Ranges, EmoteRange{Start: uint16(start), End: uint16(end)})
		}
		if len(emote.Ranges) > 0 {
			emotes = append(emotes, emote)
		}
	}
	return emotes
}
