package nlp

import "strings"

// Vocabulary is the fixed list of technical terms recognised in résumé text.
var Vocabulary = []string{
	"python", "java", "c++", "machine learning", "deep learning", "nlp",
	"sql", "mysql", "pandas", "numpy", "tensorflow", "pytorch", "opencv",
	"react", "node", "html", "css", "javascript", "docker", "kubernetes",
}

// DetectSkills returns the vocabulary terms that occur anywhere in text,
// compared case-insensitively. The result follows vocabulary order.
func DetectSkills(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, s := range Vocabulary {
		if strings.Contains(lower, s) {
			out = append(out, s)
		}
	}
	return out
}

// MergeSkills concatenates the lists, trims every entry and drops blanks and
// repeats. The first occurrence of a skill decides its position.
func MergeSkills(lists ...[]string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// SplitSkills parses a comma separated list typed by the user.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return MergeSkills(strings.Split(raw, ","))
}
