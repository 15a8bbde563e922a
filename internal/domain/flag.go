package domain

import "strings"

// FlagConstraints describes the rule enforced by ParseFlag.
const FlagConstraints = "Flags should be either true or false"

// Flag is a named boolean field of an applicant. Boolean-valued fields share
// this one type and are told apart by name.
type Flag struct {
	name string
	set  bool
}

// NewFlag returns a flag with the given name and value.
func NewFlag(name string, set bool) Flag {
	return Flag{name: name, set: set}
}

// ParseFlag parses the literals "true" and "false", ignoring case.
func ParseFlag(name, raw string) (Flag, error) {
	switch strings.ToLower(raw) {
	case "true":
		return NewFlag(name, true), nil
	case "false":
		return NewFlag(name, false), nil
	default:
		return Flag{}, NewInvalidFieldError(name, FlagConstraints)
	}
}

// IsValidFlag reports whether raw is a boolean literal accepted by ParseFlag.
func IsValidFlag(raw string) bool {
	_, err := ParseFlag("", raw)
	return err == nil
}

// Name returns the flag's field name.
func (f Flag) Name() string {
	return f.name
}

// IsSet returns the flag's value.
func (f Flag) IsSet() bool {
	return f.set
}

// String returns "true" or "false".
func (f Flag) String() string {
	if f.set {
		return "true"
	}
	return "false"
}
