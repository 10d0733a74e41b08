package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/groupmask"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidPreset signals a preset definition which does not validate.
	ErrInvalidPreset = errors.New("preset: invalid definition")
	// ErrUnknownFormat signals a preset file of unknown type.
	ErrUnknownFormat = errors.New("preset: unknown file format")
)

// Definition is the serialized form of a preset.
type Definition struct {
	Groups       []int  `toml:"groups" yaml:"groups" validate:"required,min=1,dive,gt=0"`
	Separator    string `toml:"separator,omitempty" yaml:"separator,omitempty" validate:"omitempty,len=1"`
	Segmentation string `toml:"segmentation,omitempty" yaml:"segmentation,omitempty" validate:"omitempty,oneof=runes graphemes"`
}

type presetFile struct {
	Preset map[string]Definition `toml:"preset" yaml:"preset"`
}

// Mask is a resolved preset.
type Mask struct {
	Name         string
	Rules        *groupmask.RuleSet
	Separator    rune
	Segmentation groupmask.Segmentation
}

// Registry holds presets by name.
type Registry struct {
	masks map[string]Mask
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{masks: make(map[string]Mask)}
}

// Defaults creates a registry pre-loaded with common masks.
func Defaults() *Registry {
	r := NewRegistry()
	for name, def := range map[string]Definition{
		"mobile-cn": {Groups: []int{3, 4, 4}},
		"phone-us":  {Groups: []int{3, 3, 4}, Separator: "-"},
		"card":      {Groups: []int{4, 4, 4, 4}},
		"amex":      {Groups: []int{4, 6, 5}},
		"iban-de":   {Groups: []int{4, 4, 4, 4, 4, 2}},
		"date":      {Groups: []int{4, 2, 2}, Separator: "-"},
	} {
		if err := r.Define(name, def); err != nil {
			panic(err) // built-ins are valid
		}
	}
	return r
}

// Define validates def and registers it under name, replacing any preset of
// the same name.
func (r *Registry) Define(name string, def Definition) error {
	m, err := resolve(name, def)
	if err != nil {
		return err
	}
	r.masks[name] = m
	return nil
}

// Lookup returns the preset registered under name.
func (r *Registry) Lookup(name string) (Mask, bool) {
	m, ok := r.masks[name]
	return m, ok
}

// Names returns the names of all presets, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.masks))
	for name := range r.masks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadFile reads presets from a .toml, .yaml or .yml file.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = r.LoadTOML(f)
	case ".yaml", ".yml":
		err = r.LoadYAML(f)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return fmt.Errorf("loading presets from %s: %w", path, err)
	}
	return nil
}

// LoadTOML reads presets in TOML format. Either all presets of the input are
// registered, or none.
func (r *Registry) LoadTOML(rd io.Reader) error {
	var f presetFile
	dec := toml.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("preset: parsing TOML: %w", err)
	}
	return r.add(f.Preset)
}

// LoadYAML reads presets in YAML format. Either all presets of the input are
// registered, or none.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var f presetFile
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("preset: parsing YAML: %w", err)
	}
	return r.add(f.Preset)
}

func (r *Registry) add(defs map[string]Definition) error {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	slices.Sort(names)
	resolved := make([]Mask, 0, len(defs))
	var errs []error
	for _, name := range names {
		m, err := resolve(name, defs[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		resolved = append(resolved, m)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	for _, m := range resolved {
		tracer().Debugf("preset: %s = %s %q", m.Name, m.Rules, m.Separator)
		r.masks[m.Name] = m
	}
	return nil
}

func resolve(name string, def Definition) (Mask, error) {
	if err := validate.Var(name, "required,printascii"); err != nil {
		return Mask{}, fmt.Errorf("%w: name %q", ErrInvalidPreset, name)
	}
	if err := validate.Struct(def); err != nil {
		tracer().Errorf("preset %s: %v", name, err)
		return Mask{}, fmt.Errorf("%w %q: %s", ErrInvalidPreset, name, describe(err))
	}
	rules, err := groupmask.NewRuleSet(def.Groups...)
	if err != nil {
		return Mask{}, fmt.Errorf("%w %q: %w", ErrInvalidPreset, name, err)
	}
	seg, err := groupmask.ParseSegmentation(def.Segmentation)
	if err != nil {
		return Mask{}, fmt.Errorf("%w %q: segmentation %q", ErrInvalidPreset, name, def.Segmentation)
	}
	m := Mask{
		Name:         name,
		Rules:        rules,
		Separator:    ' ',
		Segmentation: seg,
	}
	if def.Separator != "" {
		m.Separator, _ = utf8.DecodeRuneInString(def.Separator)
	}
	return m, nil
}

// describe renders validation errors as "field: tag=param" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		s := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			s += "=" + fe.Param()
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
