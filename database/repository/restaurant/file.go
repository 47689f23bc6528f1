package restaurantRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"restohours/models"

	"gopkg.in/yaml.v3"
)

// FileRestaurantRepo reads the dataset from a JSON or YAML file. The format is
// picked from the extension; anything other than .yaml/.yml is read as JSON.
type FileRestaurantRepo struct {
	Path string
}

func NewFileRestaurantRepo(path string) RestaurantRepository {
	return &FileRestaurantRepo{Path: path}
}

func (r *FileRestaurantRepo) GetAll(ctx context.Context) ([]models.RawRestaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	var restaurants []models.RawRestaurant
	switch strings.ToLower(filepath.Ext(r.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &restaurants)
	default:
		err = json.Unmarshal(data, &restaurants)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dataset file %s: %w", r.Path, err)
	}
	return restaurants, nil
}
