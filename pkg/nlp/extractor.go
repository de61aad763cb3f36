package nlp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/artem13815/cooked/pkg/resume"
)

// Extractor detects contact fields and skills in résumé text.
type Extractor struct {
	persons PersonFinder
	log     *slog.Logger
}

// NewExtractor builds an Extractor. persons may be nil, in which case only
// the heading heuristic is used for names.
func NewExtractor(persons PersonFinder, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{persons: persons, log: log}
}

// Extract never fails: anything it cannot find is left empty.
func (e *Extractor) Extract(ctx context.Context, text string) resume.Record {
	return resume.Record{
		Name:        e.name(ctx, text),
		Email:       FindEmail(text),
		Phone:       FindPhone(text),
		Skills:      DetectSkills(text),
		PreviewText: Preview(text),
	}
}

func (e *Extractor) name(ctx context.Context, text string) string {
	if n, ok := HeadingName(text); ok {
		return n
	}
	if e.persons == nil || strings.TrimSpace(text) == "" {
		return ""
	}
	names, err := e.persons.FindPersons(ctx, text)
	if err != nil {
		e.log.WarnContext(ctx, "person lookup failed", "error", err)
		return ""
	}
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
