package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"

	"github.com/artem13815/cooked/pkg/llm"
)

// PersonFinder returns person names found in text, in order of appearance.
type PersonFinder interface {
	FindPersons(ctx context.Context, text string) ([]string, error)
}

// ProseFinder runs the prose named-entity model over the text. The model is
// loaded once and only read afterwards.
type ProseFinder struct {
	model *prose.Model
}

func NewProseFinder() *ProseFinder {
	// an empty document is enough to materialise the bundled model
	doc, err := prose.NewDocument("", prose.WithSegmentation(false))
	if err != nil {
		return &ProseFinder{}
	}
	return &ProseFinder{model: doc.Model}
}

func (f *ProseFinder) FindPersons(_ context.Context, text string) ([]string, error) {
	opts := []prose.DocOpt{prose.WithTagging(false), prose.WithSegmentation(false)}
	if f.model != nil {
		opts = append(opts, prose.UsingModel(f.model))
	}
	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}
	var out []string
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			out = append(out, ent.Text)
		}
	}
	return out, nil
}

// LLMFinder asks a chat model to list the people mentioned in the text.
type LLMFinder struct {
	model    llm.ChatModel
	maxChars int
}

func NewLLMFinder(model llm.ChatModel) *LLMFinder {
	return &LLMFinder{model: model, maxChars: 4000}
}

func (f *LLMFinder) FindPersons(ctx context.Context, text string) ([]string, error) {
	text = truncate(text, f.maxChars)
	system := "You are a named-entity recogniser. Reply with a JSON array of strings only, no markdown."
	user := fmt.Sprintf("List the full names of people mentioned in this résumé, in order of appearance:\n<<<\n%s\n>>>", text)
	raw, err := f.model.Ask(ctx, system, user)
	if err != nil {
		return nil, err
	}
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "["); i >= 0 {
		if j := strings.LastIndex(raw, "]"); j > i {
			raw = raw[i : j+1]
		}
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("parse person list: %w", err)
	}
	out := names[:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
