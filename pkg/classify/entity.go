package classify

// Field is a professional category a résumé can be assigned to.
type Field string

const (
	DataScience        Field = "Data Science"
	WebDevelopment     Field = "Web Development"
	AndroidDevelopment Field = "Android Development"
	IOSDevelopment     Field = "iOS Development"
	UIUX               Field = "UI/UX"
	Unknown            Field = "Unknown"
)

// Known reports whether f is one of the five classifiable fields.
func (f Field) Known() bool {
	switch f {
	case DataScience, WebDevelopment, AndroidDevelopment, IOSDevelopment, UIUX:
		return true
	}
	return false
}

type Course struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Prediction is the best-fit field with what to learn next.
type Prediction struct {
	Field              Field    `json:"field"`
	RecommendedSkills  []string `json:"recommendedSkills"`
	RecommendedCourses []Course `json:"recommendedCourses"`
}

// FieldMatch is the number of distinct keywords of a field found in a résumé.
type FieldMatch struct {
	Field   Field `json:"field"`
	Matches int   `json:"matches"`
}
