// Package unitname maps ping targets to systemd unit names and back.
package unitname

import (
	"errors"
	"strings"
)

// Prefix is the namespace token shared by every unit managed by ping-ops.
const Prefix = "continuous-ping-"

// Suffix is the systemd service unit extension.
const Suffix = ".service"

// ErrEmptyTarget is returned when a target address is empty.
var ErrEmptyTarget = errors.New("target address must not be empty")

// Encode derives the unit name for a target address. Dots and colons are
// replaced with dashes so IPv4 and IPv6 addresses both produce valid unit
// file names. The mapping is deterministic; the unit name is the
// authoritative identity from this point on.
func Encode(target string) (string, error) {
	if target == "" {
		return "", ErrEmptyTarget
	}

	replacer := strings.NewReplacer(".", "-", ":", "-")
	return Prefix + replacer.Replace(target) + Suffix, nil
}

// Decode reconstructs a display address from a unit name. Because Encode
// collapses both dots and colons to dashes, the result is cosmetic only:
// unit names with more than three separators are rendered as IPv6
// (colons), everything else as IPv4 (dots). Never use the result as an
// authoritative identity.
func Decode(unitName string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(unitName, Prefix), Suffix)

	if strings.Contains(name, "--") || strings.Count(name, "-") > 3 {
		return strings.ReplaceAll(name, "-", ":")
	}
	return strings.ReplaceAll(name, "-", ".")
}

// IsManaged reports whether a unit name belongs to the ping-ops namespace.
func IsManaged(unitName string) bool {
	return strings.HasPrefix(unitName, Prefix) && strings.HasSuffix(unitName, Suffix)
}
