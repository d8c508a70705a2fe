// scripts/import_templates_csv.go
package main

import (
	"StarBoard/config"
	"StarBoard/logging"
	"StarBoard/models"
	"StarBoard/repositories/impl"
	"StarBoard/services"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Imports task templates from a CSV with the header
// key,title,description,stars,category,emoji. Rows are upserted by key.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	csvPath := "templates.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	file, err := openCSV(csvPath)
	if err != nil {
		slog.Error("Template CSV not found", "path", csvPath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	templates, err := parseTemplates(file)
	if err != nil {
		slog.Error("Failed to parse CSV", "error", err)
		os.Exit(1)
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	templateService := services.NewTemplateService(impl.NewTemplateRepository(db))
	count, err := templateService.Import(context.Background(), templates)
	if err != nil {
		slog.Error("Import stopped", "imported", count, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Import finished: %d templates\n", count)
}

// openCSV tries the path as given, then under scripts/.
func openCSV(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err == nil {
		return file, nil
	}
	if filepath.IsAbs(path) {
		return nil, err
	}
	return os.Open(filepath.Join("scripts", path))
}

func parseTemplates(r io.Reader) ([]models.TaskTemplate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var templates []models.TaskTemplate
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			slog.Warn("Skipping incomplete row", "line", line)
			continue
		}

		template := models.TaskTemplate{
			Key:      strings.TrimSpace(record[0]),
			Title:    strings.TrimSpace(record[1]),
			Stars:    1,
			Position: len(templates) + 1,
		}
		if len(record) > 2 {
			template.Description = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			if stars, err := strconv.Atoi(strings.TrimSpace(record[3])); err == nil && stars > 0 {
				template.Stars = stars
			}
		}
		if len(record) > 4 {
			template.Category = strings.TrimSpace(record[4])
		}
		if len(record) > 5 {
			template.Emoji = strings.TrimSpace(record[5])
		}
		templates = append(templates, template)
	}
	return templates, nil
}
