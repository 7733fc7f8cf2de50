package models

import "time"

type FoodEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Timestamp time.Time `json:"timestamp"`
}

// Product is a nutrition lookup result, normalized per 100g serving.
type Product struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

//
// For TOML parsing only
//

type FoodDefTOML struct {
	Name     string  `toml:"name"`
	Calories float64 `toml:"calories"`
	Protein  float64 `toml:"protein"`
	Carbs    float64 `toml:"carbs"`
	Fat      float64 `toml:"fat"`
}

type FoodImport struct {
	Foods []FoodDefTOML `toml:"food"`
}

// DefaultFoodDatabase seeds the quick-match database used by the log command
// before the user has any history of their own.
func DefaultFoodDatabase() []Product {
	return []Product{
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0},
		{Name: "Rice (100g)", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
		{Name: "Egg", Calories: 70, Protein: 6, Fat: 5, Carbs: 0.6},
	}
}
