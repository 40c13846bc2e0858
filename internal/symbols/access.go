package symbols

import (
	"encoding/json"
	"strings"
)

// Access is a C++ access specifier. The zero value is AccessNone, so an
// index entry without an access field reads as unavailable data.
type Access uint8

const (
	// AccessNone marks degenerate or unavailable data.
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessPrivate
)

// Rank is the position of a in member listings: public, protected, private,
// then everything else.
func (a Access) Rank() int {
	switch a {
	case AccessPublic:
		return 0
	case AccessProtected:
		return 1
	case AccessPrivate:
		return 2
	default:
		return 3
	}
}

// String renders the specifier. AccessNone and out-of-range values render as
// "unknown".
func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// ParseAccess maps the textual form to an Access. Anything unrecognised maps
// to AccessNone.
func ParseAccess(s string) Access {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return AccessPublic
	case "protected":
		return AccessProtected
	case "private":
		return AccessPrivate
	default:
		return AccessNone
	}
}

// MarshalJSON encodes the access specifier as a string.
func (a Access) MarshalJSON() ([]byte, error) {
	if a == AccessNone {
		return json.Marshal("none")
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts the textual form. Fields that are absent from the
// document keep the zero value, AccessNone.
func (a *Access) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAccess(s)
	return nil
}
