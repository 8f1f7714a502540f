package employee

import (
	"sort"
	"strings"

	employeeerrors "employee-directory/internal/employee/errors"
)

type SortKey string

const (
	SortKeyName    SortKey = "name"
	SortKeyAddress SortKey = "address"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ParseSortKey accepts name or address, case-insensitively. Empty means name.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultSortState().Key, nil
	case SortKeyName:
		return SortKeyName, nil
	case SortKeyAddress:
		return SortKeyAddress, nil
	}
	return "", employeeerrors.ErrInvalidSortKey
}

// ParseSortDir returns SortDesc for "desc" and SortAsc for anything else.
func ParseSortDir(s string) SortDir {
	if SortDir(strings.ToLower(strings.TrimSpace(s))) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

func (d SortDir) Reverse() SortDir {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// SortState is the column/direction pair a table header keeps between clicks.
type SortState struct {
	Key SortKey
	Dir SortDir
}

func DefaultSortState() SortState {
	return SortState{Key: SortKeyName, Dir: SortAsc}
}

// Toggle flips the direction when key is already active and otherwise
// switches to key in ascending order.
func (s SortState) Toggle(key SortKey) SortState {
	if key == s.Key {
		return SortState{Key: key, Dir: s.Dir.Reverse()}
	}
	return SortState{Key: key, Dir: SortAsc}
}

// Project returns a sorted copy of records. The comparison is a
// case-insensitive byte-wise comparison of the key field; equal values keep
// their input order in both directions. records is never modified. An
// unknown key compares every record as equal and returns the input order.
func Project(records []Employee, key SortKey, dir SortDir) []Employee {
	out := make([]Employee, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortValue(out[i], key), sortValue(out[j], key)
		if dir == SortDesc {
			return a > b
		}
		return a < b
	})
	return out
}

func sortValue(e Employee, key SortKey) string {
	switch key {
	case SortKeyName:
		return strings.ToLower(e.Name)
	case SortKeyAddress:
		return strings.ToLower(e.Address)
	}
	return ""
}
