package groupmask

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRuleSetDerivedValues(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rs, err := NewRuleSet(3, 4, 4)
	if err != nil {
		t.Fatalf("NewRuleSet failed: %v", err)
	}
	if rs.SeparatorCount() != 2 {
		t.Errorf("separator count = %d, want 2", rs.SeparatorCount())
	}
	if rs.RawMaxLength() != 11 {
		t.Errorf("raw max length = %d, want 11", rs.RawMaxLength())
	}
	if rs.FormattedMaxLength() != 13 {
		t.Errorf("formatted max length = %d, want 13", rs.FormattedMaxLength())
	}
	if b := rs.Boundaries(); !slices.Equal(b, []int{3, 8}) {
		t.Errorf("boundaries = %v, want [3 8]", b)
	}
	for n := 0; n <= 14; n++ {
		want := n == 3 || n == 8
		if rs.IsBoundary(n) != want {
			t.Errorf("IsBoundary(%d) = %v, want %v", n, rs.IsBoundary(n), want)
		}
	}
	if rs.String() != "3-4-4" {
		t.Errorf("String() = %q", rs.String())
	}
}

func TestRuleSetSingleGroup(t *testing.T) {
	rs := MustRuleSet(5)
	if rs.SeparatorCount() != 0 || rs.FormattedMaxLength() != 5 {
		t.Errorf("unexpected single group rule set: %d separators, max %d",
			rs.SeparatorCount(), rs.FormattedMaxLength())
	}
	if len(rs.Boundaries()) != 0 {
		t.Errorf("single group should have no boundaries, has %v", rs.Boundaries())
	}
	if rs.IsBoundary(5) {
		t.Errorf("end of last group must not be a boundary")
	}
}

func TestRuleSetRejectsInvalidGroups(t *testing.T) {
	cases := []struct {
		groups []int
		index  int
	}{
		{nil, -1},
		{[]int{}, -1},
		{[]int{0}, 0},
		{[]int{3, -1, 4}, 1},
		{[]int{3, 4, 0}, 2},
	}
	for _, tc := range cases {
		rs, err := NewRuleSet(tc.groups...)
		if rs != nil {
			t.Errorf("NewRuleSet(%v) returned a partial rule set", tc.groups)
		}
		if !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("NewRuleSet(%v): expected ErrInvalidRule, got %v", tc.groups, err)
		}
		var ire *InvalidRuleError
		if !errors.As(err, &ire) {
			t.Fatalf("NewRuleSet(%v): expected *InvalidRuleError, got %T", tc.groups, err)
		}
		if ire.Index != tc.index {
			t.Errorf("NewRuleSet(%v): index = %d, want %d", tc.groups, ire.Index, tc.index)
		}
		t.Logf("error = %v", err)
	}
}

func TestRuleSetIsImmutable(t *testing.T) {
	groups := []int{2, 2}
	rs := MustRuleSet(groups...)
	groups[0] = 9
	if rs.RawMaxLength() != 4 {
		t.Errorf("rule set aliases caller's slice")
	}
	g := rs.Groups()
	g[1] = 9
	b := rs.Boundaries()
	b[0] = 0
	if !slices.Equal(rs.Groups(), []int{2, 2}) || !rs.IsBoundary(2) {
		t.Errorf("rule set leaks internal state")
	}
}

func TestMustRuleSetPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustRuleSet() to panic")
		}
	}()
	MustRuleSet()
}

func TestParseRuleSet(t *testing.T) {
	for _, s := range []string{"3,4,4", "3-4-4", "3 4 4", " 3; 4 ;4 "} {
		rs, err := ParseRuleSet(s)
		if err != nil {
			t.Fatalf("ParseRuleSet(%q) failed: %v", s, err)
		}
		if !rs.Equal(MustRuleSet(3, 4, 4)) {
			t.Errorf("ParseRuleSet(%q) = %s", s, rs)
		}
	}
	for _, s := range []string{"", "3,x", "3,0"} {
		if _, err := ParseRuleSet(s); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("ParseRuleSet(%q): expected ErrInvalidRule, got %v", s, err)
		}
	}
}

func TestNilRuleSet(t *testing.T) {
	var rs *RuleSet
	if rs.IsBoundary(0) || rs.FormattedMaxLength() != 0 || rs.Groups() != nil {
		t.Errorf("nil rule set should behave as empty")
	}
	if !rs.Equal(nil) || rs.Equal(MustRuleSet(1)) {
		t.Errorf("unexpected equality for nil rule set")
	}
}
