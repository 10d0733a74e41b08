package groupmask

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RuleSet is an immutable, validated sequence of group lengths.
//
// Boundaries are measured in formatted length, i.e. separators already
// inserted count. For groups 3-4-4 the boundaries are 3 and 8: a separator
// follows the 3rd and the 8th character of the display form.
type RuleSet struct {
	groups     []int
	boundaries []int // ascending, len(groups)-1 entries
	raw        int   // sum of groups
}

// InvalidRuleError is returned when a RuleSet is constructed from an empty
// sequence or from a sequence containing a non-positive group length.
// It unwraps to ErrInvalidRule.
type InvalidRuleError struct {
	Groups []int // offending input
	Index  int   // index of the first invalid group, -1 for an empty sequence
}

func (e *InvalidRuleError) Error() string {
	if e.Index < 0 || e.Index >= len(e.Groups) {
		return fmt.Sprintf("%s: no groups", ErrInvalidRule)
	}
	return fmt.Sprintf("%s: group #%d has length %d", ErrInvalidRule, e.Index, e.Groups[e.Index])
}

// Unwrap makes errors.Is(err, ErrInvalidRule) hold.
func (e *InvalidRuleError) Unwrap() error {
	return ErrInvalidRule
}

// NewRuleSet creates a rule set from an ordered sequence of group lengths.
// It fails with an *InvalidRuleError if groups is empty or any group is < 1.
func NewRuleSet(groups ...int) (*RuleSet, error) {
	if len(groups) == 0 {
		return nil, &InvalidRuleError{Index: -1}
	}
	for i, g := range groups {
		if g <= 0 {
			return nil, &InvalidRuleError{Groups: slices.Clone(groups), Index: i}
		}
	}
	rs := &RuleSet{
		groups:     slices.Clone(groups),
		boundaries: make([]int, 0, len(groups)-1),
	}
	for i, g := range groups {
		rs.raw += g
		if i < len(groups)-1 {
			rs.boundaries = append(rs.boundaries, rs.raw+i)
		}
	}
	return rs, nil
}

// MustRuleSet is like NewRuleSet, but panics on invalid input.
// It is intended for package level defaults.
func MustRuleSet(groups ...int) *RuleSet {
	rs, err := NewRuleSet(groups...)
	if err != nil {
		panic(err)
	}
	return rs
}

// ParseRuleSet reads a rule set from a textual list of group lengths.
// Groups may be delimited by commas, hyphens, semicolons or white space,
// thus "3,4,4", "3-4-4" and "3 4 4" are equivalent.
func ParseRuleSet(s string) (*RuleSet, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '-' || r == ';' || r == ' ' || r == '\t'
	})
	groups := make([]int, 0, len(fields))
	for _, f := range fields {
		g, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read group %q", ErrInvalidRule, f)
		}
		groups = append(groups, g)
	}
	return NewRuleSet(groups...)
}

// Groups returns a copy of the group lengths.
func (rs *RuleSet) Groups() []int {
	if rs == nil {
		return nil
	}
	return slices.Clone(rs.groups)
}

// SeparatorCount is the number of separators of a completely filled mask.
func (rs *RuleSet) SeparatorCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.groups) - 1
}

// RawMaxLength is the number of content characters, excluding separators.
func (rs *RuleSet) RawMaxLength() int {
	if rs == nil {
		return 0
	}
	return rs.raw
}

// FormattedMaxLength is the length of a completely filled display form.
func (rs *RuleSet) FormattedMaxLength() int {
	return rs.RawMaxLength() + rs.SeparatorCount()
}

// Boundaries returns a copy of the formatted lengths after which a separator
// is inserted.
func (rs *RuleSet) Boundaries() []int {
	if rs == nil {
		return nil
	}
	return slices.Clone(rs.boundaries)
}

// IsBoundary reports whether a separator belongs immediately after the
// character at running formatted length n.
func (rs *RuleSet) IsBoundary(n int) bool {
	if rs == nil {
		return false
	}
	_, found := slices.BinarySearch(rs.boundaries, n)
	return found
}

// Equal reports whether two rule sets consist of the same groups.
func (rs *RuleSet) Equal(other *RuleSet) bool {
	if rs == nil || other == nil {
		return rs == other
	}
	return slices.Equal(rs.groups, other.groups)
}

// String renders the groups as "3-4-4".
func (rs *RuleSet) String() string {
	if rs == nil {
		return "<no rules>"
	}
	parts := make([]string, len(rs.groups))
	for i, g := range rs.groups {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, "-")
}
