package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/artem13815/cooked/pkg/analysis"
)

const (
	analysesSheet     = "Analyses"
	distributionSheet = "Distribution"
)

// WriteAnalysesXLSX writes the log as a workbook with a data sheet and a
// per-field distribution sheet.
func WriteAnalysesXLSX(w io.Writer, rows []analysis.SavedAnalysis) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", analysesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(distributionSheet); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := writeAnalysesSheet(f, rows, header); err != nil {
		return fmt.Errorf("analyses sheet: %w", err)
	}
	if err := writeDistributionSheet(f, Distribution(rows), header); err != nil {
		return fmt.Errorf("distribution sheet: %w", err)
	}
	return f.Write(w)
}

func writeAnalysesSheet(f *excelize.File, rows []analysis.SavedAnalysis, header int) error {
	if err := f.SetSheetRow(analysesSheet, "A1", &analysisHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(analysesSheet, "A1", "K1", header); err != nil {
		return err
	}
	for i, a := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			a.ID, a.Name, a.Email, a.Score, a.Timestamp, a.PageCount,
			a.PredictedField, a.UserLevel,
			joinList(a.ActualSkills), joinList(a.RecommendedSkills), joinList(a.RecommendedCourses),
		}
		if err := f.SetSheetRow(analysesSheet, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(analysesSheet, "B", "C", 28); err != nil {
		return err
	}
	return f.SetColWidth(analysesSheet, "I", "K", 50)
}

func writeDistributionSheet(f *excelize.File, counts []analysis.FieldCount, header int) error {
	if err := f.SetSheetRow(distributionSheet, "A1", &[]any{"Predicted Field", "Count"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(distributionSheet, "A1", "B1", header); err != nil {
		return err
	}
	for i, c := range counts {
		row := i + 2
		if err := f.SetCellValue(distributionSheet, fmt.Sprintf("A%d", row), c.Field); err != nil {
			return err
		}
		if err := f.SetCellValue(distributionSheet, fmt.Sprintf("B%d", row), c.Count); err != nil {
			return err
		}
	}
	return f.SetColWidth(distributionSheet, "A", "A", 25)
}

// Distribution counts analyses per predicted field, largest first and by
// name on ties.
func Distribution(rows []analysis.SavedAnalysis) []analysis.FieldCount {
	byField := map[string]int{}
	for _, a := range rows {
		byField[a.PredictedField]++
	}
	out := make([]analysis.FieldCount, 0, len(byField))
	for field, n := range byField {
		out = append(out, analysis.FieldCount{Field: field, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Field < out[j].Field
	})
	return out
}
