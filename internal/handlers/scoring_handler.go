package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"lead-scoring-backend/internal/models"
	"lead-scoring-backend/internal/repositories"
	"lead-scoring-backend/internal/services"
)

type ScoringHandler struct {
	offerRepo  repositories.OfferRepository
	leadRepo   repositories.LeadRepository
	resultRepo repositories.ResultRepository
	scorer     services.ScoringService
}

func NewScoringHandler(
	offerRepo repositories.OfferRepository,
	leadRepo repositories.LeadRepository,
	resultRepo repositories.ResultRepository,
	scorer services.ScoringService,
) *ScoringHandler {
	return &ScoringHandler{
		offerRepo:  offerRepo,
		leadRepo:   leadRepo,
		resultRepo: resultRepo,
		scorer:     scorer,
	}
}

// HandleScoreLeads handles POST /score. Both preconditions are checked
// before any per-lead work begins, each with its own error.
func (h *ScoringHandler) HandleScoreLeads(c *fiber.Ctx) error {
	offer, err := h.offerRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "No offer found",
				"message": "Please create an offer using POST /offer before scoring",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load offer",
		})
	}

	leads, err := h.leadRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "No leads found",
				"message": "Please upload leads using POST /leads/upload before scoring",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load leads",
		})
	}

	scoredLeads, err := h.scorer.ScoreLeads(c.UserContext(), leads, offer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Scoring failed",
			"message": err.Error(),
		})
	}

	stored, err := h.resultRepo.Set(scoredLeads)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to store results",
		})
	}

	summary := summarize(stored)

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully scored %d leads", len(stored)),
		"data": fiber.Map{
			"count":   len(stored),
			"summary": summary,
			"leads":   stored,
		},
	})
}

// HandleGetResults handles GET /results. The debug sub-record is stripped
// unless ?debug=true.
func (h *ScoringHandler) HandleGetResults(c *fiber.Ctx) error {
	results, err := h.resultRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "No results found",
				"message": "Please run scoring using POST /score first",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load results",
		})
	}

	includeDebug := c.Query("debug") == "true"
	if !includeDebug {
		for i := range results {
			results[i] = results[i].WithoutDebug()
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
	})
}

// HandleExportResults handles GET /results/export
func (h *ScoringHandler) HandleExportResults(c *fiber.Ctx) error {
	results, err := h.resultRepo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "No results found",
				"message": "Please run scoring using POST /score first",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load results",
		})
	}

	csvData, err := services.ExportScoredLeadsCSV(results)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to export results",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=scored-leads.csv")

	return c.SendString(csvData)
}

func summarize(results []models.ScoredLead) models.ScoreSummary {
	var summary models.ScoreSummary
	for _, result := range results {
		switch result.Intent {
		case models.IntentHigh:
			summary.High++
		case models.IntentMedium:
			summary.Medium++
		case models.IntentLow:
			summary.Low++
		}
	}
	return summary
}
