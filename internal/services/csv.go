package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lead-scoring-backend/internal/models"
)

// requiredCSVColumns is the exact header set an uploaded lead file must
// carry (case-insensitive, whitespace-trimmed).
var requiredCSVColumns = []string{"name", "role", "company", "industry", "location", "linkedin_bio"}

// exportHeaders is the fixed column order of the results export.
var exportHeaders = []string{"Name", "Role", "Company", "Industry", "Location", "Intent", "Score", "Reasoning"}

// ParseLeadsCSV parses an uploaded CSV into leads. Missing required columns
// or an empty file are fatal parse errors.
func ParseLeadsCSV(r io.Reader) ([]models.Lead, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("CSV file is empty or invalid")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	for i, col := range header {
		columnIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range requiredCSVColumns {
		if _, ok := columnIndex[col]; !ok {
			return nil, fmt.Errorf("CSV must contain columns: %s", strings.Join(requiredCSVColumns, ", "))
		}
	}

	field := func(record []string, col string) string {
		idx := columnIndex[col]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var leads []models.Lead
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		leads = append(leads, models.Lead{
			Name:        field(record, "name"),
			Role:        field(record, "role"),
			Company:     field(record, "company"),
			Industry:    field(record, "industry"),
			Location:    field(record, "location"),
			LinkedInBio: field(record, "linkedin_bio"),
		})
	}

	if len(leads) == 0 {
		return nil, errors.New("CSV file is empty or invalid")
	}

	return leads, nil
}

// ExportScoredLeadsCSV renders scored leads as CSV with RFC 4180 quoting.
// The debug sub-record is never part of the export.
func ExportScoredLeadsCSV(results []models.ScoredLead) (string, error) {
	if len(results) == 0 {
		return "", errors.New("no data to export")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		row := []string{
			result.Name,
			result.Role,
			result.Company,
			result.Industry,
			result.Location,
			string(result.Intent),
			strconv.Itoa(result.Score),
			result.Reasoning,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.String(), nil
}
