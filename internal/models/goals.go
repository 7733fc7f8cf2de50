package models

type GoalConfig struct {
	RestCalories  float64 `json:"rest_calories"`
	TrainCalories float64 `json:"train_calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	TargetWeight  float64 `json:"target_weight"`
}

// DefaultGoals mirrors the targets the app ships with before the user
// configures anything.
func DefaultGoals() GoalConfig {
	return GoalConfig{
		RestCalories:  1500,
		TrainCalories: 1800,
		Protein:       200,
		Carbs:         145,
		Fat:           45,
		TargetWeight:  75,
	}
}
