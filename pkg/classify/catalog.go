package classify

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Entry is the static data attached to one field.
type Entry struct {
	Field             Field    `yaml:"field" json:"field"`
	Keywords          []string `yaml:"keywords" json:"keywords"`
	RecommendedSkills []string `yaml:"recommendedSkills" json:"recommendedSkills"`
	Courses           []Course `yaml:"courses" json:"courses"`
}

// Catalog is the ordered field table. Order decides ties during prediction.
type Catalog struct {
	Fields []Entry `yaml:"fields" json:"fields"`
}

var ErrInvalidCatalog = errors.New("invalid field catalog")

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog file; an empty path yields the default one.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML and validates it. Keywords are lower-cased.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(c.Fields) == 0 {
		return Catalog{}, fmt.Errorf("%w: no fields", ErrInvalidCatalog)
	}
	seen := map[Field]bool{}
	for i := range c.Fields {
		e := &c.Fields[i]
		if !e.Field.Known() {
			return Catalog{}, fmt.Errorf("%w: unknown field %q", ErrInvalidCatalog, e.Field)
		}
		if seen[e.Field] {
			return Catalog{}, fmt.Errorf("%w: duplicate field %q", ErrInvalidCatalog, e.Field)
		}
		seen[e.Field] = true

		kws := make([]string, 0, len(e.Keywords))
		dup := map[string]bool{}
		for _, kw := range e.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || dup[kw] {
				continue
			}
			dup[kw] = true
			kws = append(kws, kw)
		}
		if len(kws) == 0 {
			return Catalog{}, fmt.Errorf("%w: field %q has no keywords", ErrInvalidCatalog, e.Field)
		}
		e.Keywords = kws
		if e.RecommendedSkills == nil {
			e.RecommendedSkills = []string{}
		}
		if e.Courses == nil {
			e.Courses = []Course{}
		}
	}
	return c, nil
}
