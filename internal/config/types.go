package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

// Document represents a theme document on disk.
type Document struct {
	Version     string      `yaml:"version,omitempty" toml:"version,omitempty" validate:"omitempty,semver"`
	Name        string      `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty"`
	Components  []Component `yaml:"components" toml:"components" validate:"required,min=1,dive"`
}

// Component describes one themed element: a base selector and its slots.
type Component struct {
	Name     string               `yaml:"name" toml:"name" validate:"required,component_name"`
	Selector string               `yaml:"selector" toml:"selector" validate:"required"`
	Slots    map[string]SlotValue `yaml:"slots" toml:"slots" validate:"required,min=1,dive,keys,theme_slot,endkeys"`
}

// SlotValue is the source of one slot. Exactly one of Chain, Literal, Int,
// Height or Width is expected.
type SlotValue struct {
	Chain   string `yaml:"chain,omitempty" toml:"chain,omitempty" validate:"omitempty,chain_expr"`
	Literal string `yaml:"literal,omitempty" toml:"literal,omitempty"`
	Int     *int   `yaml:"int,omitempty" toml:"int,omitempty"`
	Height  *int   `yaml:"height,omitempty" toml:"height,omitempty" validate:"omitempty,min=0"`
	Width   *int   `yaml:"width,omitempty" toml:"width,omitempty" validate:"omitempty,min=0"`

	Selector string `yaml:"selector,omitempty" toml:"selector,omitempty"`
	Absolute bool   `yaml:"absolute,omitempty" toml:"absolute,omitempty"`
}

// UnmarshalYAML accepts a bare scalar as shorthand: text naming a builder
// family ("Margin.S3.FromTop") is a chain, anything else a literal.
func (s *SlotValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = SlotValue{}
		if looksLikeChain(value.Value) {
			s.Chain = value.Value
		} else {
			s.Literal = value.Value
		}
		return nil
	}

	type plain SlotValue
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = SlotValue(p)
	return nil
}

func looksLikeChain(text string) bool {
	head, _, _ := strings.Cut(strings.TrimSpace(text), ".")
	for _, f := range style.Families() {
		if head == f {
			return true
		}
	}
	return false
}

// sources counts how many value sources are set.
func (s SlotValue) sources() int {
	n := 0
	for _, set := range []bool{s.Chain != "", s.Literal != "", s.Int != nil, s.Height != nil, s.Width != nil} {
		if set {
			n++
		}
	}
	return n
}

// Value resolves the slot into a style value, applying the selector
// annotation when one is present.
func (s SlotValue) Value() (style.Value, error) {
	var v style.Value
	switch {
	case s.Chain != "":
		b, err := style.Compile(s.Chain)
		if err != nil {
			return style.Value{}, err
		}
		v = style.FromBuilder(b)
	case s.Literal != "":
		v = style.Literal(s.Literal)
	case s.Int != nil:
		v = style.Int(*s.Int)
	case s.Height != nil:
		v = style.Height(*s.Height)
	case s.Width != nil:
		v = style.Width(*s.Width)
	default:
		return style.Value{}, fmt.Errorf("slot has no value")
	}
	if s.Selector != "" {
		v = v.WithSelector(s.Selector, s.Absolute)
	}
	return v, nil
}
