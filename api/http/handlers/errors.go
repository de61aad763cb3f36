package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cooked/api/http/presenter"
	"github.com/artem13815/cooked/pkg/analysis"
)

// writeAnalysisError maps analysis use case errors onto status codes.
func writeAnalysisError(c *fiber.Ctx, err error) error {
	var verr analysis.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, analysis.ErrStoreUnavailable):
		return presenter.Error(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, analysis.ErrStoreWrite):
		return presenter.Error(c, http.StatusInternalServerError, analysis.ErrStoreWrite.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}
