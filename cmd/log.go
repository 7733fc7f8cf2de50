package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/config"
	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/nutrition"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	logCalories float64
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logDate     string
	logBarcode  string
	logFromDB   bool
	logGrams    float64
)

var logCmd = &cobra.Command{
	Use:   "log [food-name]",
	Short: "Add a food entry to the diary (manual macros, --barcode lookup, or --db quick match)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		entry := models.FoodEntry{
			ID:        uuid.New().String(),
			Calories:  logCalories,
			Protein:   logProtein,
			Carbs:     logCarbs,
			Fat:       logFat,
			Timestamp: time.Now().UTC(),
		}
		if len(args) == 1 {
			entry.Name = args[0]
		}

		switch {
		case logBarcode != "":
			client := nutrition.NewClient(app.cfg.Nutrition.BaseURL)
			product, err := client.ProductByBarcode(context.Background(), logBarcode)
			if errors.Is(err, nutrition.ErrNotFound) {
				fmt.Println("Product not found. Try manual entry")
				return nil
			}
			if err != nil {
				return err
			}
			applyProduct(&entry, *product, logGrams)
			fmt.Printf("Found '%s' (per %.0fg): %.0f kcal, P %.1fg, C %.1fg, F %.1fg\n",
				product.Name, logGrams, entry.Calories, entry.Protein, entry.Carbs, entry.Fat)

		case logFromDB:
			if entry.Name == "" {
				return fmt.Errorf("Need a food name to match against the database")
			}
			product, ok := matchFood(entry.Name)
			if !ok {
				return fmt.Errorf("No match for %q in the food database", entry.Name)
			}
			applyProduct(&entry, product, 100)

		default:
			if entry.Name == "" || entry.Calories <= 0 {
				return fmt.Errorf("Invalid entry: need a name and positive --cal")
			}
		}

		day := logDate
		if day == "" {
			day = tracker.Today()
		} else {
			t, err := tracker.ParseDay(day)
			if err != nil {
				return err
			}
			day = t.Format(tracker.DayFormat)
		}

		if err := app.store.AddEntry(day, entry); err != nil {
			return err
		}

		totals := app.agg.DailyTotals(day)
		fmt.Printf("✅ Logged '%s' (%.0f kcal) on %s — %.0f kcal so far\n",
			entry.Name, entry.Calories, day, totals.Calories)
		return nil
	},
}

// applyProduct scales per-100g product values to the logged serving size.
func applyProduct(e *models.FoodEntry, p models.Product, grams float64) {
	if grams <= 0 {
		grams = 100
	}
	factor := grams / 100
	e.Name = p.Name
	e.Calories = p.Calories * factor
	e.Protein = p.Protein * factor
	e.Carbs = p.Carbs * factor
	e.Fat = p.Fat * factor
}

// matchFood finds the first known food whose name contains the query, case
// insensitive. User-defined foods take precedence over the seeded ones.
func matchFood(query string) (models.Product, bool) {
	q := strings.ToLower(query)
	for _, f := range append(loadUserFoods(), models.DefaultFoodDatabase()...) {
		if strings.Contains(strings.ToLower(f.Name), q) {
			return f, true
		}
	}
	return models.Product{}, false
}

// loadUserFoods reads ~/.config/fitlog/foods.toml, a list of [[food]] tables
// with per-100g macros. A missing or unreadable file just means no extras.
func loadUserFoods() []models.Product {
	path, err := config.GetConfigPath()
	if err != nil {
		return nil
	}

	var imported models.FoodImport
	if _, err := toml.DecodeFile(filepath.Join(filepath.Dir(path), "foods.toml"), &imported); err != nil {
		return nil
	}

	foods := make([]models.Product, 0, len(imported.Foods))
	for _, f := range imported.Foods {
		foods = append(foods, models.Product{
			Name:     f.Name,
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
		})
	}
	return foods
}

func init() {
	logCmd.Flags().Float64VarP(&logCalories, "cal", "c", 0, "Calories for the entry")
	logCmd.Flags().Float64VarP(&logProtein, "protein", "p", 0, "Protein in grams")
	logCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carbs in grams")
	logCmd.Flags().Float64VarP(&logFat, "fat", "f", 0, "Fat in grams")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Day to log on (default today)")
	logCmd.Flags().StringVarP(&logBarcode, "barcode", "b", "", "Look the food up by barcode instead of typing macros")
	logCmd.Flags().BoolVar(&logFromDB, "db", false, "Fill macros from the built-in food database")
	logCmd.Flags().Float64VarP(&logGrams, "grams", "g", 100, "Serving size in grams for barcode/db lookups")
	rootCmd.AddCommand(logCmd)
}
