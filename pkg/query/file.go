package query

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NivBraz/trendstats/internal/models"
)

// WritePages stores pages as one JSON array of the raw API objects.
func WritePages(path string, pages []models.Page) error {
	if pages == nil {
		pages = []models.Page{}
	}
	data, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("failed to encode pages: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadPages loads a file written by WritePages.
func ReadPages(path string) ([]models.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pages []models.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return pages, nil
}
