package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// YAMLCollection represents the YAML structure for a collection file.
type YAMLCollection struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description,omitempty"`
	Author      string      `yaml:"author,omitempty"`
	Levels      []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level. Rows takes precedence over Map; Map is handy
// when the first row does not start with a space (YAML block scalars
// would otherwise eat the indentation).
type YAMLLevel struct {
	ID   string   `yaml:"id"`
	Rows []string `yaml:"rows,omitempty"`
	Map  string   `yaml:"map,omitempty"`
}

// text returns the level block in grammar form.
func (yl YAMLLevel) text() string {
	if len(yl.Rows) > 0 {
		return strings.Join(yl.Rows, "\n") + "\n"
	}
	return yl.Map
}

// ParseYAML parses a YAML collection file.
func ParseYAML(data []byte) (Collection, error) {
	var yc YAMLCollection
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Collection{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	c := Collection{
		Title:       yc.Title,
		Description: yc.Description,
		Author:      yc.Author,
		Levels:      make([]*core.Level, 0, len(yc.Levels)),
	}

	for i, yl := range yc.Levels {
		level, err := core.Parse(yl.text())
		if err != nil {
			return Collection{}, &BlockError{Index: i, Title: yl.ID, Err: err}
		}
		level.SetTitle(yl.ID)
		c.Levels = append(c.Levels, level)
	}

	return c, nil
}
