package services

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-scoring-backend/internal/models"
)

func TestParseLeadsCSV(t *testing.T) {
	t.Parallel()

	t.Run("parses valid file in order", func(t *testing.T) {
		t.Parallel()
		input := strings.Join([]string{
			"name,role,company,industry,location,linkedin_bio",
			"Ava Chen,CEO,Datafold,B2B SaaS,Austin,Scaling data tooling",
			"Ben Ortiz,Manager,RetailCo,Retail,Miami,Ops manager",
		}, "\n")

		leads, err := ParseLeadsCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, leads, 2)

		assert.Equal(t, "Ava Chen", leads[0].Name)
		assert.Equal(t, "CEO", leads[0].Role)
		assert.Equal(t, "B2B SaaS", leads[0].Industry)
		assert.Equal(t, "Ben Ortiz", leads[1].Name)
		assert.Equal(t, "Ops manager", leads[1].LinkedInBio)
	})

	t.Run("normalizes header case and whitespace", func(t *testing.T) {
		t.Parallel()
		input := strings.Join([]string{
			" Name , ROLE ,Company,Industry,Location, Linkedin_Bio ",
			"Ava Chen, CEO ,Datafold,B2B SaaS,Austin,Bio text",
		}, "\n")

		leads, err := ParseLeadsCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "CEO", leads[0].Role)
	})

	t.Run("missing required column fails", func(t *testing.T) {
		t.Parallel()
		input := strings.Join([]string{
			"name,role,company,industry,location",
			"Ava Chen,CEO,Datafold,B2B SaaS,Austin",
		}, "\n")

		_, err := ParseLeadsCSV(strings.NewReader(input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CSV must contain columns")
		assert.Contains(t, err.Error(), "linkedin_bio")
	})

	t.Run("empty file fails", func(t *testing.T) {
		t.Parallel()
		_, err := ParseLeadsCSV(strings.NewReader(""))
		assert.EqualError(t, err, "CSV file is empty or invalid")
	})

	t.Run("header only fails", func(t *testing.T) {
		t.Parallel()
		_, err := ParseLeadsCSV(strings.NewReader("name,role,company,industry,location,linkedin_bio\n"))
		assert.EqualError(t, err, "CSV file is empty or invalid")
	})

	t.Run("short row yields empty trailing fields", func(t *testing.T) {
		t.Parallel()
		input := strings.Join([]string{
			"name,role,company,industry,location,linkedin_bio",
			"Ava Chen,CEO",
		}, "\n")

		leads, err := ParseLeadsCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Ava Chen", leads[0].Name)
		assert.Empty(t, leads[0].Company)
		assert.Empty(t, leads[0].LinkedInBio)
	})
}

func TestExportScoredLeadsCSV(t *testing.T) {
	t.Parallel()

	t.Run("fixed header order", func(t *testing.T) {
		t.Parallel()
		csvData, err := ExportScoredLeadsCSV([]models.ScoredLead{{Name: "Ava", Intent: models.IntentHigh, Score: 85}})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(csvData), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Name,Role,Company,Industry,Location,Intent,Score,Reasoning", lines[0])
	})

	t.Run("quotes and commas round-trip", func(t *testing.T) {
		t.Parallel()
		reasoning := `Decision Maker role, "exact" match, strong fit`
		csvData, err := ExportScoredLeadsCSV([]models.ScoredLead{{
			Name:      "Ava Chen",
			Role:      "CEO",
			Company:   "Datafold, Inc.",
			Industry:  "B2B SaaS",
			Location:  "Austin",
			Intent:    models.IntentHigh,
			Score:     90,
			Reasoning: reasoning,
		}})
		require.NoError(t, err)

		// Internal quotes are doubled and the field is wrapped.
		assert.Contains(t, csvData, `"Decision Maker role, ""exact"" match, strong fit"`)
		assert.Contains(t, csvData, `"Datafold, Inc."`)

		// Re-parsing recovers the original values exactly.
		records, err := csv.NewReader(strings.NewReader(csvData)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Datafold, Inc.", records[1][2])
		assert.Equal(t, "90", records[1][6])
		assert.Equal(t, reasoning, records[1][7])
	})

	t.Run("absent values render empty", func(t *testing.T) {
		t.Parallel()
		csvData, err := ExportScoredLeadsCSV([]models.ScoredLead{{Intent: models.IntentLow, Score: 10}})
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(csvData)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"", "", "", "", "", "Low", "10", ""}, records[1])
	})

	t.Run("no data fails", func(t *testing.T) {
		t.Parallel()
		_, err := ExportScoredLeadsCSV(nil)
		assert.EqualError(t, err, "no data to export")
	})

	t.Run("debug never appears in export", func(t *testing.T) {
		t.Parallel()
		csvData, err := ExportScoredLeadsCSV([]models.ScoredLead{{
			Name:   "Ava",
			Intent: models.IntentHigh,
			Score:  85,
			Debug:  &models.ScoreDebug{RuleScore: 35, AIScore: 50, AIReasoning: "secret diagnostics"},
		}})
		require.NoError(t, err)
		assert.NotContains(t, csvData, "secret diagnostics")
		assert.NotContains(t, csvData, "rule_score")
	})
}
