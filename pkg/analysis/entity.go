package analysis

import (
	"context"
	"errors"

	"github.com/artem13815/cooked/pkg/classify"
	"github.com/artem13815/cooked/pkg/resume"
	"github.com/artem13815/cooked/pkg/scoring"
)

// TimestampLayout is how saved analyses record their creation time (UTC).
const TimestampLayout = "2006-01-02_15:04:05"

var (
	// ErrStoreUnavailable means no log store was configured.
	ErrStoreUnavailable = errors.New("analysis store is not configured")
	// ErrStoreWrite wraps a rejected insert. The report itself stays valid.
	ErrStoreWrite = errors.New("failed to save analysis")
)

// ErrValidation is a client input error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Report is everything computed for one uploaded résumé.
type Report struct {
	Filename   string                `json:"filename"`
	Pages      int                   `json:"pages"`
	Record     resume.Record         `json:"record"`
	Skills     []string              `json:"skills"`
	Prediction classify.Prediction   `json:"prediction"`
	Matches    []classify.FieldMatch `json:"matches"`
	Checklist  []scoring.Item        `json:"checklist"`
	Score      float64               `json:"score"`
	Level      scoring.Level         `json:"level"`
	Courses    []classify.Course     `json:"courses"`
	Warning    string                `json:"warning,omitempty"`
	SaveToken  string                `json:"saveToken,omitempty"`
}

// SavedAnalysis is one row of the append-only analysis log.
type SavedAnalysis struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Score              float64  `json:"score"`
	Timestamp          string   `json:"timestamp"`
	PageCount          int      `json:"pageCount"`
	PredictedField     string   `json:"predictedField"`
	UserLevel          string   `json:"userLevel"`
	ActualSkills       []string `json:"actualSkills"`
	RecommendedSkills  []string `json:"recommendedSkills"`
	RecommendedCourses []string `json:"recommendedCourses"`
}

// FieldCount is how many saved analyses predicted a field.
type FieldCount struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// Repository is the append-only analysis log.
type Repository interface {
	Create(ctx context.Context, a SavedAnalysis) (SavedAnalysis, error)
	List(ctx context.Context, limit, offset int) ([]SavedAnalysis, error)
	ListAll(ctx context.Context) ([]SavedAnalysis, error)
	CountByField(ctx context.Context) ([]FieldCount, error)
}
