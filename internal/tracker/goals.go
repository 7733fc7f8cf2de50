package tracker

import (
	"fmt"
	"math"
	"sync"

	"github.com/Rhysnute92/fitlog/internal/models"
)

type GoalKind string

const (
	GoalRestCalories  GoalKind = "rest-calories"
	GoalTrainCalories GoalKind = "train-calories"
	GoalProtein       GoalKind = "protein"
	GoalCarbs         GoalKind = "carbs"
	GoalFat           GoalKind = "fat"
	GoalTargetWeight  GoalKind = "target-weight"
)

// Registry owns the goal configuration and the rest/training mode flag. It is
// the single source of truth for which calorie target applies: nothing else
// in the app may pick between rest and training calories on its own.
type Registry struct {
	mu          sync.Mutex
	goals       models.GoalConfig
	trainingDay bool
	persist     Persister
}

func NewRegistry(p Persister) *Registry {
	r := &Registry{
		goals:   models.DefaultGoals(),
		persist: p,
	}
	if p != nil {
		p.Load(KeyGoals, &r.goals)
		p.Load(KeyTrainingDays, &r.trainingDay)
	}
	return r
}

// SetGoal updates one goal value. Non-positive or non-numeric input is
// rejected without touching the registry: goals are never silently zeroed.
func (r *Registry) SetGoal(kind GoalKind, value float64) error {
	if math.IsNaN(value) || value <= 0 {
		return fmt.Errorf("invalid %s goal %v: must be a positive number", kind, value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	switch kind {
	case GoalRestCalories:
		r.goals.RestCalories = value
	case GoalTrainCalories:
		r.goals.TrainCalories = value
	case GoalProtein:
		r.goals.Protein = value
	case GoalCarbs:
		r.goals.Carbs = value
	case GoalFat:
		r.goals.Fat = value
	case GoalTargetWeight:
		r.goals.TargetWeight = value
	default:
		return fmt.Errorf("unknown goal kind %q", kind)
	}
	return r.saveLocked()
}

// ToggleTrainingMode flips the rest/training flag and returns the calorie
// target that is now active.
func (r *Registry) ToggleTrainingMode() (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trainingDay = !r.trainingDay
	return r.activeLocked(), r.saveLocked()
}

func (r *Registry) ActiveCalorieGoal() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeLocked()
}

func (r *Registry) IsTrainingDay() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trainingDay
}

func (r *Registry) Goals() models.GoalConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.goals
}

func (r *Registry) activeLocked() float64 {
	if r.trainingDay {
		return r.goals.TrainCalories
	}
	return r.goals.RestCalories
}

func (r *Registry) saveLocked() error {
	if r.persist == nil {
		return nil
	}
	if err := r.persist.Save(KeyGoals, r.goals); err != nil {
		return fmt.Errorf("failed to persist goals: %w", err)
	}
	if err := r.persist.Save(KeyTrainingDays, r.trainingDay); err != nil {
		return fmt.Errorf("failed to persist training flag: %w", err)
	}
	return nil
}
