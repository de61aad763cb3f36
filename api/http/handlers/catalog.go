package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cooked/api/http/presenter"
	"github.com/artem13815/cooked/pkg/classify"
)

type CatalogHandler struct {
	classifier *classify.Classifier
}

func NewCatalogHandler(classifier *classify.Classifier) *CatalogHandler {
	return &CatalogHandler{classifier: classifier}
}

// Suggestions returns the skill bank offered while editing skills.
// @Summary Skill suggestions
// @Tags    catalog
// @Produce json
// @Success 200 {array} string
// @Router  /skills/suggestions [get]
func (h *CatalogHandler) Suggestions(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, h.classifier.SkillBank())
}

// Fields returns the field catalog in tie-break order.
// @Summary Career fields
// @Tags    catalog
// @Produce json
// @Success 200 {array} classify.Entry
// @Router  /fields [get]
func (h *CatalogHandler) Fields(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, h.classifier.Catalog().Fields)
}
