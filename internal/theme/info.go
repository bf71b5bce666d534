package theme

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// identifierRe matches bareword-style names: a letter or underscore
// followed by letters, digits, or underscores.
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name is usable as a theme identifier.
func ValidIdentifier(name string) bool {
	return identifierRe.MatchString(name)
}

// Info is the metadata a theme declares in its info.yaml file.
type Info struct {
	// Application identifies which host application the theme targets.
	Application string `yaml:"application" validate:"required"`

	// Identifier is the theme's unique name. It must equal the name of
	// the directory the theme lives in.
	Identifier string `yaml:"identifier" validate:"required"`

	// Name is the human-readable theme name.
	Name string `yaml:"name" validate:"required"`

	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Website     string `yaml:"website"`
	License     string `yaml:"license"`
	Version     string `yaml:"version"`
	Preview     string `yaml:"preview"`
}

var validate = validator.New()

// ParseInfo decodes and validates an info.yaml document.
func ParseInfo(data []byte) (*Info, error) {
	var info Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse theme metadata: %w", err)
	}

	if err := validate.Struct(&info); err != nil {
		return nil, fmt.Errorf("invalid theme metadata: %w", err)
	}

	if !ValidIdentifier(info.Identifier) {
		return nil, fmt.Errorf("invalid theme identifier %q", info.Identifier)
	}

	return &info, nil
}
