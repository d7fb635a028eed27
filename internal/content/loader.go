package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/forgeline/LegendaryForge_Go/internal/domain"
)

// Sentinel errors for the content loader
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrUnknownRef    = errors.New("unknown reference")
)

// CatalogFileName is the content file the loader expects inside the config
// directory
const CatalogFileName = "catalog.json"

// Loader handles loading and validating the game content catalog
type Loader interface {
	Load(dir string) (*Catalog, error)
	Validate(catalog *Catalog) error
}

type catalogLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{validate: validator.New()}
}

// Load reads and parses the catalog JSON from the config directory
func (l *catalogLoader) Load(dir string) (*Catalog, error) {
	path := filepath.Join(dir, CatalogFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse content catalog %s: %w", path, err)
	}

	return &catalog, nil
}

// Validate checks the catalog for structural errors and dangling references
func (l *catalogLoader) Validate(catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("%w: catalog is nil", ErrInvalidConfig)
	}

	if err := l.validate.Struct(catalog); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	materials := make(map[domain.MaterialType]bool, len(catalog.Materials))
	for _, m := range catalog.Materials {
		if materials[m.Type] {
			return fmt.Errorf("%w: material %q", ErrDuplicateID, m.Type)
		}
		materials[m.Type] = true
	}

	recipes := make(map[string]bool, len(catalog.Recipes))
	for _, r := range catalog.Recipes {
		if recipes[r.ID] {
			return fmt.Errorf("%w: recipe %q", ErrDuplicateID, r.ID)
		}
		recipes[r.ID] = true

		if len(r.Materials) == 0 {
			return fmt.Errorf("%w: recipe %q has no material costs", ErrInvalidConfig, r.ID)
		}
		for _, cost := range r.Materials {
			if !materials[cost.Type] {
				return fmt.Errorf("%w: recipe %q uses material %q", ErrUnknownRef, r.ID, cost.Type)
			}
			if cost.Quantity <= 0 {
				return fmt.Errorf("%w: recipe %q has non-positive cost for %q", ErrInvalidConfig, r.ID, cost.Type)
			}
		}
	}

	levels := make(map[int]bool, len(catalog.MineLevels))
	for _, ml := range catalog.MineLevels {
		if levels[ml.Level] {
			return fmt.Errorf("%w: mine level %d", ErrDuplicateID, ml.Level)
		}
		levels[ml.Level] = true
		for _, d := range ml.Drops {
			if !materials[d.Type] {
				return fmt.Errorf("%w: mine level %d drops material %q", ErrUnknownRef, ml.Level, d.Type)
			}
		}
	}

	for _, e := range catalog.Expeditions {
		for _, d := range e.Drops {
			if !materials[d] {
				return fmt.Errorf("%w: expedition %q drops material %q", ErrUnknownRef, e.MapType, d)
			}
		}
	}

	cards := make(map[string]bool, len(catalog.Cards))
	for _, card := range catalog.Cards {
		if cards[card.ID] {
			return fmt.Errorf("%w: card %q", ErrDuplicateID, card.ID)
		}
		cards[card.ID] = true
		if _, ok := domain.CardRarityWeights[card.Rarity]; !ok {
			return fmt.Errorf("%w: card %q has rarity %q", ErrInvalidConfig, card.ID, card.Rarity)
		}
	}

	for _, u := range catalog.Upgrades {
		if u.Effect == UpgradeUnlockRecipe && !recipes[u.RecipeID] {
			return fmt.Errorf("%w: upgrade %q unlocks recipe %q", ErrUnknownRef, u.ID, u.RecipeID)
		}
	}

	return nil
}
