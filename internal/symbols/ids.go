package symbols

import (
	"strconv"
)

// SymbolID is a stable, content-derived symbol identifier.
// The zero value never identifies a real symbol and means "absent".
type SymbolID uint64

// NoID is the zero SymbolID.
const NoID SymbolID = 0

// IsValid reports whether id can identify a symbol.
func (id SymbolID) IsValid() bool { return id != NoID }

// String returns the decimal form used in file names and anchors.
func (id SymbolID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseSymbolID parses the decimal form produced by String.
func ParseSymbolID(s string) (SymbolID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NoID, err
	}
	return SymbolID(v), nil
}

// GroupKey identifies a freestanding function group: every free function with
// the same name inside the same namespace renders on one shared page.
type GroupKey struct {
	Namespace SymbolID
	Name      string
}

// NotGrouped is the sentinel GroupKey of functions that belong to no group.
var NotGrouped = GroupKey{}

// IsZero reports whether k is the NotGrouped sentinel.
func (k GroupKey) IsZero() bool { return k == NotGrouped }
