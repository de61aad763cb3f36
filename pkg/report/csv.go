package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/artem13815/cooked/pkg/analysis"
)

var analysisHeader = []string{
	"ID", "Name", "Email", "Resume Score", "Timestamp", "Total Page",
	"Predicted Field", "User Level", "Actual Skills", "Recommended Skills", "Recommended Course",
}

var reportHeader = []string{
	"Filename", "Name", "Email", "Phone", "Pages", "Level", "Resume Score",
	"Predicted Field", "Skills", "Recommended Skills", "Recommended Courses",
}

// WriteAnalysesCSV dumps the whole analysis log, one row per saved analysis.
func WriteAnalysesCSV(w io.Writer, rows []analysis.SavedAnalysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(analysisHeader); err != nil {
		return err
	}
	for _, a := range rows {
		if err := cw.Write(analysisRow(a)); err != nil {
			return fmt.Errorf("write analysis %d: %w", a.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportCSV writes a single report as a header plus one row.
func WriteReportCSV(w io.Writer, rep analysis.Report) error {
	courses := make([]string, 0, len(rep.Courses))
	for _, c := range rep.Courses {
		courses = append(courses, c.Name)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	if err := cw.Write([]string{
		safeCell(rep.Filename),
		safeCell(rep.Record.Name),
		safeCell(rep.Record.Email),
		safeCell(rep.Record.Phone),
		strconv.Itoa(rep.Pages),
		safeCell(string(rep.Level)),
		formatScore(rep.Score),
		safeCell(string(rep.Prediction.Field)),
		safeCell(joinList(rep.Skills)),
		safeCell(joinList(rep.Prediction.RecommendedSkills)),
		safeCell(joinList(courses)),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func analysisRow(a analysis.SavedAnalysis) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		safeCell(a.Name),
		safeCell(a.Email),
		formatScore(a.Score),
		safeCell(a.Timestamp),
		strconv.Itoa(a.PageCount),
		safeCell(a.PredictedField),
		safeCell(a.UserLevel),
		safeCell(joinList(a.ActualSkills)),
		safeCell(joinList(a.RecommendedSkills)),
		safeCell(joinList(a.RecommendedCourses)),
	}
}

func formatScore(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) }

func joinList(v []string) string { return strings.Join(v, ", ") }

// safeCell keeps spreadsheet apps from evaluating text cells as formulas.
func safeCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
