package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"lead-scoring-backend/internal/repositories"
	"lead-scoring-backend/internal/services"
)

type LeadsHandler struct {
	leadRepo    repositories.LeadRepository
	maxFileSize int64
}

func NewLeadsHandler(leadRepo repositories.LeadRepository, maxFileSize int64) *LeadsHandler {
	return &LeadsHandler{
		leadRepo:    leadRepo,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadLeads handles POST /leads/upload
func (h *LeadsHandler) HandleUploadLeads(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No file uploaded. Please upload a CSV file.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open uploaded file",
		})
	}
	defer src.Close()

	leads, err := services.ParseLeadsCSV(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	saved, err := h.leadRepo.Set(leads)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to store leads",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully uploaded %d leads", len(saved)),
		"data": fiber.Map{
			"count": len(saved),
			"leads": saved,
		},
	})
}

// HandleGetLeads handles GET /leads
func (h *LeadsHandler) HandleGetLeads(c *fiber.Ctx) error {
	leads, err := h.leadRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "No leads found",
				"message": "Please upload leads using POST /leads/upload first",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load leads",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"count": len(leads),
			"leads": leads,
		},
	})
}
