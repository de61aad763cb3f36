package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cooked/api/http/presenter"
	"github.com/artem13815/cooked/pkg/analysis"
	"github.com/artem13815/cooked/pkg/nlp"
	"github.com/artem13815/cooked/pkg/report"
)

const defaultMaxUpload = 10 << 20

type ResumeHandler struct {
	uc        analysis.UseCase
	maxBytes  int64
	uploadDir string
	log       *slog.Logger
}

func NewResumeHandler(uc analysis.UseCase, maxBytes int64, uploadDir string, log *slog.Logger) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUpload
	}
	if log == nil {
		log = slog.Default()
	}
	return &ResumeHandler{uc: uc, maxBytes: maxBytes, uploadDir: uploadDir, log: log}
}

// Analyze scores an uploaded PDF résumé.
// @Summary     Analyze a résumé
// @Description Extracts contact details and skills, predicts a career field, scores section coverage and picks courses.
// @Tags        resume
// @Accept      multipart/form-data
// @Produce     json
// @Param       file       formData file   true  "Résumé (PDF)"
// @Param       skills     formData string false "Edited skills, comma separated; replaces detected skills"
// @Param       maxCourses formData int    false "Courses to recommend (1-8, default 4)"
// @Success     200 {object} analysis.Report
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf)")
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf is allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	in := analysis.Input{Filename: fh.Filename, Data: data}
	if form, err := c.MultipartForm(); err == nil {
		if v, ok := form.Value["skills"]; ok && len(v) > 0 {
			in.Skills = nlp.SplitSkills(v[0])
		}
	}
	if v := strings.TrimSpace(c.FormValue("maxCourses")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "maxCourses must be an integer")
		}
		in.MaxCourses = n
	}

	rep, err := h.uc.Analyze(c.Context(), in)
	if err != nil {
		return writeAnalysisError(c, err)
	}
	h.keepUpload(c, fh.Filename, data)
	return presenter.JSON(c, http.StatusOK, rep)
}

// ReportCSV turns a report back into a one-row CSV download.
// @Summary Download report as CSV
// @Tags    resume
// @Accept  json
// @Produce text/csv
// @Param   input body analysis.Report true "report returned by /resume/analyze"
// @Success 200 {file} file
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /resume/report.csv [post]
func (h *ResumeHandler) ReportCSV(c *fiber.Ctx) error {
	var rep analysis.Report
	if err := c.BodyParser(&rep); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	var buf bytes.Buffer
	if err := report.WriteReportCSV(&buf, rep); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render report")
	}
	name := strings.TrimSuffix(filepath.Base(rep.Filename), filepath.Ext(rep.Filename))
	if name == "" || name == "." {
		name = "resume"
	}
	return presenter.Download(c, name+"_report.csv", csvContentType, buf.Bytes())
}

// keepUpload stores the raw file under a uuid-prefixed name. Failures are
// logged only; the analysis has already succeeded.
func (h *ResumeHandler) keepUpload(c *fiber.Ctx, filename string, data []byte) {
	if h.uploadDir == "" {
		return
	}
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.log.WarnContext(c.Context(), "prepare upload dir", "dir", h.uploadDir, "error", err)
		return
	}
	dst := filepath.Join(h.uploadDir, uuid.NewString()+"_"+filepath.Base(filename))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		h.log.WarnContext(c.Context(), "store upload", "path", dst, "error", err)
	}
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
