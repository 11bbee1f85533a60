package ircwire

import "strings"

// TagSet is the IRCv3 tag block of a message: tag-name to tag-value.
// Ordering is irrelevant; keys are unique; empty-value entries are kept.
type TagSet map[string]string

// ParseTags splits a raw tag block (without the leading '@') on ';' and then
// on the first '=' of each segment. No escape-unquoting is performed.
func ParseTags(raw string) TagSet {
	if raw == "" {
		return nil
	}
	tags := make(TagSet)
	for _, part := range strings.Split(raw, ";") {
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			tags[key] = ""
			continue
		}
		tags[key] = value
	}
	return tags
}

// Emotes yields the ordered emote sequence from the "emotes" tag.
func (t TagSet) Emotes() []Emote {
	return ParseEmotes(t["emotes"])
}

// Badges yields the ordered badge sequence from the "badges" tag.
func (t TagSet) Badges() []Badge {
	return ParseBadges(t["badges"])
}

// Color returns the "color" tag parsed as RGB, defaulting to white.
func (t TagSet) Color() RGB {
	v, ok := t["color"]
	if !ok || v == "" {
		return DefaultRGB
	}
	return ParseRGB(v)
}

// DisplayName returns the "display-name" tag, which may be empty.
func (t TagSet) DisplayName() string {
	return t["display-name"]
}

// UserID returns the "user-id" tag and whether it was present and non-empty.
func (t TagSet) UserID() (string, bool) {
	v, ok := t["user-id"]
	return v, ok && v != ""
}
