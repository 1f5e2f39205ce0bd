package main

import (
	"encoding/csv"
	"greenstech/config"
	"greenstech/database"
	"greenstech/models"
	"log"
	"os"
	"strconv"
	"strings"
)

// Imports the course catalog from Catalog.csv. Expected headers:
// domainId, title, description, price, duration. Rows are keyed on
// (domainId, title); existing courses are updated, new ones inserted.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		course := models.Course{
			DomainID:    parseUint(getField(row, headerIndex, "domainId")),
			Title:       getField(row, headerIndex, "title"),
			Description: getField(row, headerIndex, "description"),
			Price:       getField(row, headerIndex, "price"),
			Duration:    getField(row, headerIndex, "duration"),
			IsActive:    true,
		}

		// Skip rows without a title
		if course.Title == "" {
			skipped++
			continue
		}

		var existing models.Course
		result := database.Database.Db.
			Where("domain_id = ? AND title = ?", course.DomainID, course.Title).
			First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %s: %v", course.Title, err)
				continue
			}
			inserted++
		} else {
			existing.Description = course.Description
			existing.Price = course.Price
			existing.Duration = course.Duration

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %s: %v", course.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseUint converts string to uint
func parseUint(s string) uint {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(val)
}
