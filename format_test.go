package groupmask

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormatBoundaries(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rules := MustRuleSet(3, 4, 4)
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"}, // no trailing separator
		{"1234", "123-4"},
		{"1234567", "123-4567"},
		{"12345678", "123-4567-8"},
		{"1234567890", "123-4567-890"},
		{"12345678901", "123-4567-8901"},
		{"123-", "123"},      // stale trailing separator is dropped
		{"123--", "123"},     // and so are several
		{"-1-2-3-4", "123-4"}, // separators anywhere are irrelevant
		{"1234-5678901", "123-4567-8901"},
		{"abcdefg", "abc-defg"}, // any character is groupable
	}
	for _, tc := range cases {
		if got := Format(tc.in, rules, '-'); got != tc.out {
			t.Errorf("Format(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestFormatDoesNotCap(t *testing.T) {
	rules := MustRuleSet(3, 4, 4)
	f := Format("123456789012345", rules, '-')
	if f != "123-4567-89012345" {
		t.Errorf("Format of overlong input = %q", f)
	}
	if d := Runes.Display("123456789012345", rules, '-'); d != "123-4567-8901" {
		t.Errorf("Display of overlong input = %q", d)
	}
}

func TestFormatSpaceSeparator(t *testing.T) {
	rules := MustRuleSet(4, 4, 4, 4)
	if got := Format("4111 1111 1111 1111", rules, ' '); got != "4111 1111 1111 1111" {
		t.Errorf("Format = %q", got)
	}
	if got := Format("41111111 11111111", rules, ' '); got != "4111 1111 1111 1111" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatNonASCII(t *testing.T) {
	rules := MustRuleSet(2, 2)
	if got := Format("äöüß", rules, '·'); got != "äö·üß" {
		t.Errorf("Format = %q", got)
	}
}

func TestStripAndTruncate(t *testing.T) {
	if s := Strip("12-34-5-", '-'); s != "12345" {
		t.Errorf("Strip = %q", s)
	}
	if s := Strip("12 34", '-'); s != "12 34" {
		t.Errorf("Strip must only remove the separator, got %q", s)
	}
	if s := Truncate("äöüß", 2); s != "äö" {
		t.Errorf("Truncate = %q", s)
	}
	if s := Truncate("äö", 5); s != "äö" {
		t.Errorf("Truncate = %q", s)
	}
	if s := Truncate("äö", -1); s != "" {
		t.Errorf("Truncate = %q", s)
	}
}

// --- Properties ------------------------------------------------------------

func randomInput(rnd *rand.Rand) string {
	const alphabet = "0123456789ab--- "
	n := rnd.Intn(24)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rnd.Intn(len(alphabet))])
	}
	return b.String()
}

func randomRules(rnd *rand.Rand) *RuleSet {
	groups := make([]int, 1+rnd.Intn(5))
	for i := range groups {
		groups[i] = 1 + rnd.Intn(5)
	}
	return MustRuleSet(groups...)
}

func TestFormatProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 2000; i++ {
		x := randomInput(rnd)
		rules := randomRules(rnd)
		f := Format(x, rules, '-')
		if ff := Format(f, rules, '-'); ff != f {
			t.Fatalf("not idempotent for %q under %s: %q -> %q", x, rules, f, ff)
		}
		if fs := Format(Strip(x, '-'), rules, '-'); fs != f {
			t.Fatalf("separator positions matter for %q under %s: %q vs %q", x, rules, f, fs)
		}
		if strings.HasSuffix(f, "-") || strings.HasPrefix(f, "-") {
			t.Fatalf("leading or trailing separator for %q under %s: %q", x, rules, f)
		}
		if Strip(f, '-') != Strip(x, '-') {
			t.Fatalf("content altered for %q under %s: %q", x, rules, f)
		}
		d := Runes.Display(x, rules, '-')
		if Runes.Length(d) > rules.FormattedMaxLength() {
			t.Fatalf("display form %q exceeds %d under %s", d, rules.FormattedMaxLength(), rules)
		}
		if dd := Runes.Display(d, rules, '-'); dd != d {
			t.Fatalf("display not idempotent for %q under %s: %q -> %q", x, rules, d, dd)
		}
	}
}
