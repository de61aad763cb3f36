package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cooked/pkg/analysis"
)

// AnalysisRepository is the append-only analysis log. Every column except
// the id is stored as text; lists are JSON arrays.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{pool: pool}
}

const analysisColumns = `id, name, email, resume_score, created_at, page_count,
	predicted_field, user_level, actual_skills, recommended_skills, recommended_courses`

func (r *AnalysisRepository) Create(ctx context.Context, a analysis.SavedAnalysis) (analysis.SavedAnalysis, error) {
	actual, err := marshalList(a.ActualSkills)
	if err != nil {
		return analysis.SavedAnalysis{}, err
	}
	recSkills, err := marshalList(a.RecommendedSkills)
	if err != nil {
		return analysis.SavedAnalysis{}, err
	}
	recCourses, err := marshalList(a.RecommendedCourses)
	if err != nil {
		return analysis.SavedAnalysis{}, err
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO analyses (name, email, resume_score, created_at, page_count,
	predicted_field, user_level, actual_skills, recommended_skills, recommended_courses)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`, a.Name, a.Email, formatScore(a.Score), a.Timestamp, strconv.Itoa(a.PageCount),
		a.PredictedField, a.UserLevel, actual, recSkills, recCourses)
	if err := row.Scan(&a.ID); err != nil {
		return analysis.SavedAnalysis{}, err
	}
	return a, nil
}

func (r *AnalysisRepository) List(ctx context.Context, limit, offset int) ([]analysis.SavedAnalysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+`
FROM analyses
ORDER BY id DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) ListAll(ctx context.Context) ([]analysis.SavedAnalysis, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+analysisColumns+` FROM analyses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) CountByField(ctx context.Context) ([]analysis.FieldCount, error) {
	rows, err := r.pool.Query(ctx, `
SELECT predicted_field, COUNT(*)
FROM analyses
GROUP BY predicted_field
ORDER BY COUNT(*) DESC, predicted_field
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []analysis.FieldCount{}
	for rows.Next() {
		var fc analysis.FieldCount
		if err := rows.Scan(&fc.Field, &fc.Count); err != nil {
			return nil, err
		}
		res = append(res, fc)
	}
	return res, rows.Err()
}

func collectAnalyses(rows pgx.Rows) ([]analysis.SavedAnalysis, error) {
	defer rows.Close()
	res := []analysis.SavedAnalysis{}
	for rows.Next() {
		var (
			a                             analysis.SavedAnalysis
			score, pages                  string
			actual, recSkills, recCourses string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &score, &a.Timestamp, &pages,
			&a.PredictedField, &a.UserLevel, &actual, &recSkills, &recCourses); err != nil {
			return nil, err
		}
		a.Score, _ = strconv.ParseFloat(score, 64)
		a.PageCount, _ = strconv.Atoi(pages)
		a.ActualSkills = unmarshalList(actual)
		a.RecommendedSkills = unmarshalList(recSkills)
		a.RecommendedCourses = unmarshalList(recCourses)
		res = append(res, a)
	}
	return res, rows.Err()
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func marshalList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// unmarshalList tolerates rows written by hand; they come back as empty lists.
func unmarshalList(s string) []string {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
