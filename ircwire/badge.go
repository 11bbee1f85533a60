package ircwire

import (
	"encoding/json"
	"strings"
)

// Badge is a Twitch role marker carried in the "badges" tag.
type Badge struct {
	kind    badgeKind
	unknown string
}

type badgeKind int

const (
	BadgeAdmin badgeKind = iota
	BadgeBroadcaster
	BadgeGlobalMod
	BadgeModerator
	BadgeSubscriber
	BadgeStaff
	BadgeTurbo
	BadgeVip
	BadgeBits
	badgeUnknown
)

var badgeNames = map[string]badgeKind{
	"admin":       BadgeAdmin,
	"broadcaster": BadgeBroadcaster,
	"global_mod":  BadgeGlobalMod,
	"moderator":   BadgeModerator,
	"subscriber":  BadgeSubscriber,
	"staff":       BadgeStaff,
	"turbo":       BadgeTurbo,
	"vip":         BadgeVip,
	"bits":        BadgeBits,
}

// canonicalBadgeNames mirrors the original's serde-derived enum variant
// names, which is what a Badge serializes to on the wire.
var canonicalBadgeNames = map[badgeKind]string{
	BadgeAdmin:       "Admin",
	BadgeBroadcaster: "Broadcaster",
	BadgeGlobalMod:   "GlobalMod",
	BadgeModerator:   "Moderator",
	BadgeSubscriber:  "Subscriber",
	BadgeStaff:       "Staff",
	BadgeTurbo:       "Turbo",
	BadgeVip:         "Vip",
	BadgeBits:        "Bits",
}

var canonicalBadgeKinds = func() map[string]badgeKind {
	out := make(map[string]badgeKind, len(canonicalBadgeNames))
	for k, name := range canonicalBadgeNames {
		out[name] = k
	}
	return out
}()

// Kind reports the badge's variant.
func (b Badge) Kind() badgeKind {
	return b.kind
}

// Unknown returns the original badge name when Kind() is the Unknown variant.
func (b Badge) Unknown() (string, bool) {
	if b.kind == badgeUnknown {
		return b.unknown, true
	}
	return "", false
}

// String renders the canonical name.
func (b Badge) String() string {
	if b.kind == badgeUnknown {
		return b.unknown
	}
	if name, ok := canonicalBadgeNames[b.kind]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON serializes a Badge as a bare string, matching how the
// original's serde-derived enum serializes each variant.
func (b Badge) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts a bare string, either one of the canonical variant
// names or an arbitrary name that maps to the Unknown variant.
func (b *Badge) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if k, ok := canonicalBadgeKinds[name]; ok {
		*b = Badge{kind: k}
		return nil
	}
	*b = Badge{kind: badgeUnknown, unknown: name}
	return nil
}

func newBadge(name string) Badge {
	lower := strings.ToLower(name)
	if k, ok := badgeNames[lower]; ok {
		return Badge{kind: k}
	}
	return Badge{kind: badgeUnknown, unknown: name}
}

// ParseBadges parses the "badges" tag value: "name/version,name/version".
// The version suffix is accepted but ignored - all versions of a badge count.
func ParseBadges(value string) []Badge {
	if value == "" {
		return nil
	}
	var badges []Badge
	for _, part := range strings.Split(value, ",") {
		if part == "" {
			continue
		}
		name := part
		if idx := strings.IndexByte(part, '/'); idx >= 0 {
			name = part[:idx]
		}
		badges = append(badges, newBadge(name))
	}
	return badges
}
