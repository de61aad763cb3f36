package handlers

import (
	"bytes"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cooked/api/http/presenter"
	"github.com/artem13815/cooked/pkg/analysis"
	"github.com/artem13815/cooked/pkg/report"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type AnalysisHandler struct {
	uc analysis.UseCase
}

func NewAnalysisHandler(uc analysis.UseCase) *AnalysisHandler { return &AnalysisHandler{uc: uc} }

type listResponse struct {
	Items  []analysis.SavedAnalysis `json:"items"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// Save appends a report to the analysis log.
// @Summary Save an analysis
// @Tags    analyses
// @Accept  json
// @Produce json
// @Param   input body analysis.Report true "report returned by /resume/analyze, unmodified"
// @Success 201 {object} analysis.SavedAnalysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /analyses [post]
func (h *AnalysisHandler) Save(c *fiber.Ctx) error {
	var rep analysis.Report
	if err := c.BodyParser(&rep); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	saved, err := h.uc.Save(c.Context(), rep)
	if err != nil {
		return writeAnalysisError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// List pages through saved analyses, newest first.
// @Summary List saved analyses
// @Tags    admin
// @Produce json
// @Param   limit  query int false "page size (max 200)"
// @Param   offset query int false "rows to skip"
// @Security BearerAuth
// @Success 200 {object} listResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /admin/analyses [get]
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return writeAnalysisError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, listResponse{Items: items, Limit: limit, Offset: offset})
}

// Distribution counts saved analyses per predicted field.
// @Summary Field distribution
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analysis.FieldCount
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /admin/analyses/distribution [get]
func (h *AnalysisHandler) Distribution(c *fiber.Ctx) error {
	counts, err := h.uc.Distribution(c.Context())
	if err != nil {
		return writeAnalysisError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, counts)
}

// ExportCSV downloads the whole log as CSV.
// @Summary Export analyses (CSV)
// @Tags    admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /admin/analyses/export.csv [get]
func (h *AnalysisHandler) ExportCSV(c *fiber.Ctx) error {
	rows, err := h.uc.All(c.Context())
	if err != nil {
		return writeAnalysisError(c, err)
	}
	var buf bytes.Buffer
	if err := report.WriteAnalysesCSV(&buf, rows); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render export")
	}
	return presenter.Download(c, "analyses.csv", csvContentType, buf.Bytes())
}

// ExportXLSX downloads the whole log as an Excel workbook.
// @Summary Export analyses (XLSX)
// @Tags    admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /admin/analyses/export.xlsx [get]
func (h *AnalysisHandler) ExportXLSX(c *fiber.Ctx) error {
	rows, err := h.uc.All(c.Context())
	if err != nil {
		return writeAnalysisError(c, err)
	}
	var buf bytes.Buffer
	if err := report.WriteAnalysesXLSX(&buf, rows); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render export")
	}
	return presenter.Download(c, "analyses.xlsx", xlsxContentType, buf.Bytes())
}
