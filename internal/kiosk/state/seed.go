package state

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"cafe-kiosk/internal/kiosk/domain/models"
)

//go:embed menu.json
var seedMenu []byte

// SeedMenu returns the built-in catalog the store starts with.
func SeedMenu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := json.Unmarshal(seedMenu, &items); err != nil {
		return nil, fmt.Errorf("failed to parse seed menu: %w", err)
	}
	return items, nil
}
