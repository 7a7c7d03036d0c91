package models

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Style tags a narrative line with its presentation category.
type Style int

const (
	StyleNormal Style = iota
	StyleTitle
	StyleLocation
	StyleDescription
	StyleAtmosphere
	StylePrompt
	StyleInput
	StyleSuccess
	StyleWarning
	StyleError
)

var styleNames = [...]string{
	StyleNormal:      "normal",
	StyleTitle:       "title",
	StyleLocation:    "location",
	StyleDescription: "description",
	StyleAtmosphere:  "atmosphere",
	StylePrompt:      "prompt",
	StyleInput:       "input",
	StyleSuccess:     "success",
	StyleWarning:     "warning",
	StyleError:       "error",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "normal"
	}
	return styleNames[s]
}

// ParseStyle maps a style name back to its tag.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == strings.ToLower(name) {
			return Style(i), nil
		}
	}
	return StyleNormal, errors.Errorf("unknown style %q", name)
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Style) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	return s.UnmarshalText([]byte(node.Value))
}

// Line is one line of narrative output.
type Line struct {
	Text  string `yaml:"text" json:"text"`
	Style Style  `yaml:"style" json:"style"`
}

// HasStyle reports whether any line carries the given style.
func HasStyle(lines []Line, s Style) bool {
	for _, l := range lines {
		if l.Style == s {
			return true
		}
	}
	return false
}
