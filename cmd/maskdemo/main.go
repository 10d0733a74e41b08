/*
Maskdemo reads a single masked line from the terminal.

Usage:

	maskdemo [flags]

The flags are:

	-rules "3,4,4"
		group lengths of the mask
	-sep "-"
		separator character (default is a space)
	-preset name
		use a named preset instead of -rules and -sep
	-presets file
		load additional presets from a TOML or YAML file
	-graphemes
		count characters as grapheme clusters instead of code points
	-trace level
		trace level: error, info or debug

Maskdemo prints the formatted line and the raw content after Enter.

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/groupmask"
	"github.com/npillmayer/groupmask/field"
	"github.com/npillmayer/groupmask/mask"
	"github.com/npillmayer/groupmask/preset"
	"github.com/npillmayer/groupmask/termfield"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	rules := flag.String("rules", "3,4,4", "group lengths of the mask")
	sep := flag.String("sep", " ", "separator character")
	name := flag.String("preset", "", "named preset, overrides -rules and -sep")
	file := flag.String("presets", "", "TOML or YAML file with additional presets")
	graphemes := flag.Bool("graphemes", false, "count grapheme clusters instead of code points")
	level := flag.String("trace", "error", "trace level [error|info|debug]")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))

	m, err := selectMask(*rules, *sep, *name, *file, *graphemes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maskdemo: %v\n", err)
		os.Exit(2)
	}
	if err := run(m); err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(os.Stderr, "maskdemo: %v\n", err)
		os.Exit(1)
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch s {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// selectMask builds the mask from the command line, either from a preset or
// from -rules and -sep.
func selectMask(rules, sep, name, file string, graphemes bool) (preset.Mask, error) {
	seg := groupmask.Runes
	if graphemes {
		seg = groupmask.Graphemes
	}
	if name != "" {
		reg := preset.Defaults()
		if file != "" {
			if err := reg.LoadFile(file); err != nil {
				return preset.Mask{}, err
			}
		}
		m, ok := reg.Lookup(name)
		if !ok {
			return preset.Mask{}, fmt.Errorf("unknown preset %q, known presets are %v", name, reg.Names())
		}
		if graphemes {
			m.Segmentation = seg
		}
		return m, nil
	}
	rs, err := groupmask.ParseRuleSet(rules)
	if err != nil {
		return preset.Mask{}, err
	}
	if utf8.RuneCountInString(sep) != 1 {
		return preset.Mask{}, fmt.Errorf("separator must be a single character: %w", groupmask.ErrIllegalArguments)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	return preset.Mask{Name: rs.String(), Rules: rs, Separator: r, Segmentation: seg}, nil
}

func run(m preset.Mask) error {
	model := field.New(m.Segmentation)
	c, err := mask.NewController(model, m.Rules,
		mask.WithSeparator(m.Separator), mask.WithSegmentation(m.Segmentation))
	if err != nil {
		return err
	}
	defer c.Close()
	tf := termfield.New(model, c)
	tf.Prompt = fmt.Sprintf("%s> ", m.Name)
	text, err := tf.Run(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("formatted: %s\nraw:       %s\n", text, c.Raw())
	return nil
}
