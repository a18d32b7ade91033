package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"recipe-study-backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Expected catalog columns. HSI/ESI/PPI are the preprocessed health,
// environmental and popularity indices on a 0-100 scale; composite_score in
// the file is advisory and recomputed from the three indices on load.
var requiredColumns = []string{"recipeid", "title", "ingredients", "instructions", "images", "HSI", "ESI", "PPI"}

// LoadFromCSV reads the preprocessed recipe catalog. Rows with an unparsable
// id, an empty title or a score outside [0,100] are skipped rather than
// failing the whole load.
func LoadFromCSV(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			log.Warnf("recipe catalog missing column %q, loading empty catalog", name)
			return New(nil), nil
		}
	}

	var recipes []entities.Recipe
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("skipping malformed catalog row: %v", err)
			continue
		}

		field := func(name string) string {
			idx := col[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		id, err := strconv.Atoi(field("recipeid"))
		if err != nil || id <= 0 {
			log.Warnf("skipping catalog row with bad recipeid %q", field("recipeid"))
			continue
		}
		title := field("title")
		if title == "" {
			log.Warnf("skipping catalog row %d with empty title", id)
			continue
		}

		health, errH := strconv.ParseFloat(field("HSI"), 64)
		env, errE := strconv.ParseFloat(field("ESI"), 64)
		pop, errP := strconv.ParseFloat(field("PPI"), 64)
		if errH != nil || errE != nil || errP != nil ||
			!scoreInRange(health) || !scoreInRange(env) || !scoreInRange(pop) {
			log.Warnf("skipping catalog row %d with invalid scores", id)
			continue
		}

		recipes = append(recipes, entities.Recipe{
			RecipeID:     id,
			Title:        title,
			Ingredients:  field("ingredients"),
			Instructions: field("instructions"),
			ImageURL:     field("images"),
			HealthScore:  health,
			EnvScore:     env,
			PopScore:     pop,
			Composite:    CompositeScore(health, env, pop),
		})
	}

	return New(recipes), nil
}

// LoadOrSample loads the catalog CSV and falls back to the built-in sample
// recipes when the file is missing or yields no usable rows, so the study
// can run degraded instead of refusing to start.
func LoadOrSample(path string) *Catalog {
	c, err := LoadFromCSV(path)
	if err != nil {
		log.Warnf("recipe catalog %s not readable (%v), using sample recipes", path, err)
		return SampleCatalog()
	}
	if c.Size() == 0 {
		log.Warnf("recipe catalog %s has no usable rows, using sample recipes", path)
		return SampleCatalog()
	}
	log.Infof("recipe catalog loaded: %d recipes", c.Size())
	return c
}

// Seed writes the loaded catalog into the recipes table so interaction rows
// can join against recipe rows. Re-seeding on restart overwrites in place.
func Seed(db *gorm.DB, c *Catalog) error {
	recipes := c.Recipes()
	if len(recipes) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&recipes).Error
}

func scoreInRange(v float64) bool {
	return v >= 0 && v <= 100
}
