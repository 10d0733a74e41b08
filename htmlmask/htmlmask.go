/*
Package htmlmask applies masks to the input elements of HTML documents.

An input element declares its mask with data attributes:

	<input name="tel" data-mask="3,4,4" data-mask-separator="-" value="12345678901">
	<input name="card" data-mask-preset="card" value="4111111111111111">

Prefill values are rendered in display form, and the maxlength attribute is
set to the mask's maximum formatted length, replacing an existing one. This
lets a page start out with the same text a client-side mask would produce.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package htmlmask

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/groupmask"
	"github.com/npillmayer/groupmask/preset"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute names.
const (
	AttrMask         = "data-mask"
	AttrSeparator    = "data-mask-separator"
	AttrPreset       = "data-mask-preset"
	AttrSegmentation = "data-mask-segmentation"
)

// ErrUnknownPreset is flagged for a data-mask-preset which is not registered.
var ErrUnknownPreset = errors.New("htmlmask: unknown preset")

// Masker applies masks to HTML nodes. Presets may be nil, in which case
// data-mask-preset attributes cannot be resolved.
type Masker struct {
	Presets *preset.Registry
}

// Apply parses an HTML fragment from r, masks its input elements and renders
// the result to w. Elements with invalid mask declarations are left untouched
// and reported in the returned error, all others are processed.
func (m Masker) Apply(r io.Reader, w io.Writer) error {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return fmt.Errorf("htmlmask: %w", err)
	}
	var errs []error
	for _, n := range nodes {
		if _, err := m.Walk(n); err != nil {
			errs = append(errs, err)
		}
	}
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("htmlmask: %w", err)
		}
	}
	return errors.Join(errs...)
}

// Walk masks all input elements in the tree rooted at n and returns the
// number of elements masked.
func (m Masker) Walk(n *html.Node) (int, error) {
	count := 0
	var errs []error
	if n.Type == html.ElementNode && n.DataAtom == atom.Input {
		ok, err := m.Input(n)
		if err != nil {
			errs = append(errs, err)
		} else if ok {
			count++
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		k, err := m.Walk(c)
		count += k
		if err != nil {
			errs = append(errs, err)
		}
	}
	return count, errors.Join(errs...)
}

// Input masks a single input element. It reports false for elements without
// a mask declaration.
func (m Masker) Input(n *html.Node) (bool, error) {
	mask, declared, err := m.declaration(n)
	if !declared || err != nil {
		return false, err
	}
	value, _ := attr(n, "value")
	display := mask.Segmentation.Display(value, mask.Rules, mask.Separator)
	setAttr(n, "value", display)
	setAttr(n, "maxlength", strconv.Itoa(mask.Rules.FormattedMaxLength()))
	tracer().Debugf("htmlmask: <input name=%q> %q -> %q", name(n), value, display)
	return true, nil
}

// declaration reads the mask attributes of n.
func (m Masker) declaration(n *html.Node) (preset.Mask, bool, error) {
	var mask preset.Mask
	if p, ok := attr(n, AttrPreset); ok {
		if m.Presets == nil {
			return mask, true, fmt.Errorf("%w %q at <input name=%q>", ErrUnknownPreset, p, name(n))
		}
		if mask, ok = m.Presets.Lookup(p); !ok {
			return mask, true, fmt.Errorf("%w %q at <input name=%q>", ErrUnknownPreset, p, name(n))
		}
	} else if groups, ok := attr(n, AttrMask); ok {
		rules, err := groupmask.ParseRuleSet(groups)
		if err != nil {
			return mask, true, fmt.Errorf("htmlmask: <input name=%q>: %w", name(n), err)
		}
		mask = preset.Mask{Rules: rules, Separator: ' '}
	} else {
		return mask, false, nil
	}
	if sep, ok := attr(n, AttrSeparator); ok {
		r, size := utf8.DecodeRuneInString(sep)
		if size == 0 || size != len(sep) {
			return mask, true, fmt.Errorf("htmlmask: <input name=%q>: separator %q: %w",
				name(n), sep, groupmask.ErrIllegalArguments)
		}
		mask.Separator = r
	}
	if s, ok := attr(n, AttrSegmentation); ok {
		seg, err := groupmask.ParseSegmentation(s)
		if err != nil {
			return mask, true, fmt.Errorf("htmlmask: <input name=%q>: segmentation %q: %w", name(n), s, err)
		}
		mask.Segmentation = seg
	}
	return mask, true, nil
}

// --- Attribute helpers -----------------------------------------------------

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr replaces an attribute in place or appends it.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func name(n *html.Node) string {
	s, _ := attr(n, "name")
	return s
}
