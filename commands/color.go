package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/museun/streamchat/colorstore"
	"github.com/museun/streamchat/ircwire"
)

// ColorHandler builds the built-in "color" command bound to store.
//
// "color <spec>" parses spec as a named or #RRGGBB color, rejecting colors
// whose HSL lightness is below 30; "color" with no argument resets the
// user's override.
func ColorHandler(store *colorstore.Store) Handler {
	return func(userID, rest string) Response {
		rest = strings.TrimSpace(rest)
		uid, err := strconv.ParseUint(userID, 10, 64)
		if err != nil {
			return Nothing
		}

		if rest == "" {
			_ = store.Remove(uid)
			return Message("resetting your color")
		}

		tc := ircwire.ParseTwitchColor(rest)
		rgb := tc.RGB()

		if err := store.Set(uid, rgb); err != nil {
			if err == colorstore.ErrTooDark {
				return Message(fmt.Sprintf("color %s is too dark", rest))
			}
			return Nothing
		}
		return Message(fmt.Sprintf("setting your color to: %s", rgb.String()))
	}
}
