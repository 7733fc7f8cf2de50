package utils

import "fmt"

const kgToLbs = 2.20462

// DisplayWeight formats a stored-in-kg weight in the user's display unit.
func DisplayWeight(kg float64, unit string) string {
	if unit == "lbs" {
		return fmt.Sprintf("%.1flbs", kg*kgToLbs)
	}
	return fmt.Sprintf("%.1fkg", kg)
}
