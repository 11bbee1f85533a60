// Package chatmsg builds the versioned outbound chat record from a parsed
// upstream PRIVMSG and the color store.
package chatmsg

import (
	"strconv"
	"time"

	"github.com/museun/streamchat/colorstore"
	"github.com/museun/streamchat/ircwire"
)

// CurrentVersion is the default Message.Version for records built by Normalize.
const CurrentVersion = 1

// Message is the outbound record delivered to subscribers as one JSON
// object per line.
type Message struct {
	Version     int           `json:"version"`
	UserID      string        `json:"userid"`
	Timestamp   string        `json:"timestamp"`
	Name        string        `json:"name"`
	Data        string        `json:"data"`
	Color       ircwire.RGB   `json:"color"`
	CustomColor *ircwire.RGB  `json:"custom_color,omitempty"`
	IsAction    bool          `json:"is_action"`
	Badges      []ircwire.Badge `json:"badges"`
	Emotes      []ircwire.Emote `json:"emotes"`
	Tags        ircwire.TagSet  `json:"tags"`
}

// EffectiveColor returns CustomColor if present, else Color.
func (m Message) EffectiveColor() ircwire.RGB {
	if m.CustomColor != nil {
		return *m.CustomColor
	}
	return m.Color
}

// nowMillis returns the current wall-clock time in milliseconds since the
// Unix epoch. Extracted for test determinism.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Normalize builds an outbound Message from a parsed PRIVMSG, its tags, and
// the color store's override for the sending user (if any).
func Normalize(pm *ircwire.PrivMsg, store *colorstore.Store) Message {
	tags := pm.Tags
	userID, _ := tags.UserID()

	name := tags.DisplayName()
	if name == "" {
		name = pm.Sender
	}

	msg := Message{
		Version:   CurrentVersion,
		UserID:    userID,
		Timestamp: strconv.FormatInt(nowMillis(), 10),
		Name:      name,
		Data:      pm.Data,
		Color:     tags.Color(),
		IsAction:  pm.IsAction,
		Badges:    tags.Badges(),
		Emotes:    tags.Emotes(),
		Tags:      tags,
	}

	if store != nil && userID != "" {
		if uid, err := strconv.ParseUint(userID, 10, 64); err == nil {
			if rgb, ok := store.Get(uid); ok {
				msg.CustomColor = &rgb
			}
		}
	}

	return msg
}
