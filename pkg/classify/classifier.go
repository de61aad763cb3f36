package classify

import (
	"sort"
	"strings"
)

// Classifier predicts a field from keyword overlap. It is immutable and safe
// for concurrent use.
type Classifier struct {
	catalog Catalog
}

func NewClassifier(c Catalog) *Classifier {
	return &Classifier{catalog: c}
}

// Catalog returns the table the classifier was built with.
func (c *Classifier) Catalog() Catalog { return c.catalog }

// Predict picks the field with the most distinct keyword hits in the skills
// and text. The first field in catalog order wins a tie. With no hits at all
// the field is Unknown and the recommendations are empty.
func (c *Classifier) Predict(skills []string, text string) Prediction {
	joined := joinedText(skills, text)
	best, bestScore := -1, 0
	for i, e := range c.catalog.Fields {
		if n := countKeywords(e.Keywords, joined); n > bestScore {
			best, bestScore = i, n
		}
	}
	if best < 0 {
		return Prediction{Field: Unknown, RecommendedSkills: []string{}, RecommendedCourses: []Course{}}
	}
	e := c.catalog.Fields[best]
	return Prediction{
		Field:              e.Field,
		RecommendedSkills:  append([]string(nil), e.RecommendedSkills...),
		RecommendedCourses: append([]Course(nil), e.Courses...),
	}
}

// Matches returns the keyword hit count of every field, highest first.
func (c *Classifier) Matches(skills []string, text string) []FieldMatch {
	joined := joinedText(skills, text)
	out := make([]FieldMatch, 0, len(c.catalog.Fields))
	for _, e := range c.catalog.Fields {
		out = append(out, FieldMatch{Field: e.Field, Matches: countKeywords(e.Keywords, joined)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Matches > out[j].Matches })
	return out
}

// SkillBank is the sorted union of every field's keywords.
func (c *Classifier) SkillBank() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range c.catalog.Fields {
		for _, kw := range e.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

// Entry looks up the catalog data of a field.
func (c *Classifier) Entry(f Field) (Entry, bool) {
	for _, e := range c.catalog.Fields {
		if e.Field == f {
			return e, true
		}
	}
	return Entry{}, false
}

func joinedText(skills []string, text string) string {
	return strings.ToLower(strings.Join(skills, " ")) + " " + strings.ToLower(text)
}

// countKeywords counts keywords present at least once; repeats do not add.
func countKeywords(keywords []string, text string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
