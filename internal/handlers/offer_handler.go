package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lead-scoring-backend/internal/models"
	"lead-scoring-backend/internal/repositories"
)

type OfferHandler struct {
	offerRepo repositories.OfferRepository
}

func NewOfferHandler(offerRepo repositories.OfferRepository) *OfferHandler {
	return &OfferHandler{offerRepo: offerRepo}
}

// HandleCreateOffer handles POST /offer
func (h *OfferHandler) HandleCreateOffer(c *fiber.Ctx) error {
	var req models.CreateOfferRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}

	var details []string
	if strings.TrimSpace(req.Name) == "" {
		details = append(details, "name is required and must be a non-empty string")
	}
	if len(req.ValueProps) == 0 {
		details = append(details, "value_props is required and must be a non-empty array")
	}
	if len(req.IdealUseCases) == 0 {
		details = append(details, "ideal_use_cases is required and must be a non-empty array")
	}

	if len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"details": details,
		})
	}

	offer := &models.Offer{
		Name:          strings.TrimSpace(req.Name),
		ValueProps:    trimAll(req.ValueProps),
		IdealUseCases: trimAll(req.IdealUseCases),
	}

	saved, err := h.offerRepo.Set(offer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to store offer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Offer created successfully",
		"data":    saved,
	})
}

// HandleGetOffer handles GET /offer
func (h *OfferHandler) HandleGetOffer(c *fiber.Ctx) error {
	offer, err := h.offerRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "No offer found",
				"message": "Please create an offer using POST /offer first",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load offer",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    offer,
	})
}

func trimAll(values []string) []string {
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return trimmed
}
