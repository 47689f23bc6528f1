package restaurant

import (
	"fmt"

	"restohours/models"
	"restohours/services/hours"
)

// LoadData converts raw dataset records into restaurants using best-effort parsing.
func LoadData(data []models.RawRestaurant) []models.Restaurant {
	restaurants, _ := LoadDataWith(hours.NewParser(), data)
	return restaurants
}

// LoadDataWith converts raw dataset records with the given parser. It only fails
// when the parser is strict and a schedule string is rejected.
func LoadDataWith(p *hours.Parser, data []models.RawRestaurant) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, 0, len(data))
	for _, entry := range data {
		parsed, err := p.Parse(entry.Times)
		if err != nil {
			return nil, fmt.Errorf("restaurant %q: %w", entry.Name, err)
		}
		restaurants = append(restaurants, models.Restaurant{
			Name:  entry.Name,
			Hours: parsed,
		})
	}
	return restaurants, nil
}
