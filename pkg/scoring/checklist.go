package scoring

import (
	"math"
	"strings"
)

// PointsPerSection is what each present section adds to the score.
const PointsPerSection = 12.5

// Section is a résumé section and the words that reveal it.
type Section struct {
	Label    string
	Triggers []string
}

// Checklist is the ordered list of sections a résumé is expected to have.
var Checklist = []Section{
	{Label: "Summary", Triggers: []string{"summary"}},
	{Label: "Education", Triggers: []string{"education"}},
	{Label: "Hobbies / Interests", Triggers: []string{"hobbies", "interests"}},
	{Label: "Work Experience", Triggers: []string{"work experience", "work"}},
	{Label: "Projects", Triggers: []string{"projects", "project"}},
	{Label: "Skills", Triggers: []string{"skills", "technical skills"}},
	{Label: "Activities / Achievements", Triggers: []string{"activities", "achievements"}},
	{Label: "Additional Sections", Triggers: []string{"publications", "conferences", "languages", "certifications"}},
}

type Item struct {
	Label   string `json:"label"`
	Present bool   `json:"present"`
}

// Result is the checklist outcome and its score out of 100.
type Result struct {
	Items []Item  `json:"items"`
	Score float64 `json:"score"`
}

// Evaluate marks each checklist section present when any trigger occurs in
// text, ignoring case.
func Evaluate(text string) Result {
	lower := strings.ToLower(text)
	res := Result{Items: make([]Item, 0, len(Checklist))}
	for _, s := range Checklist {
		present := false
		for _, t := range s.Triggers {
			if strings.Contains(lower, t) {
				present = true
				break
			}
		}
		res.Items = append(res.Items, Item{Label: s.Label, Present: present})
		if present {
			res.Score += PointsPerSection
		}
	}
	return res
}

// ValidScore reports whether s is a score Evaluate can produce: a whole
// number of sections between zero and the full checklist.
func ValidScore(s float64) bool {
	if s < 0 || s > float64(len(Checklist))*PointsPerSection {
		return false
	}
	n := s / PointsPerSection
	return n == math.Trunc(n)
}
