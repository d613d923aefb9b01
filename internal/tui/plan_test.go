package tui

import (
	"testing"

	"github.com/arlo/stride/internal/database/repository"
)

var searchLibrary = []repository.Exercise{
	{ID: "1", Name: "Back Squat", MuscleGroup: "legs"},
	{ID: "2", Name: "Bench Press", MuscleGroup: "chest"},
	{ID: "3", Name: "Deadlift", MuscleGroup: "back"},
	{ID: "4", Name: "Plank", MuscleGroup: "core"},
	{ID: "5", Name: "Burpees", MuscleGroup: "full body"},
}

func TestSearchExercisesSubstring(t *testing.T) {
	got := searchExercises(searchLibrary, "squat", 8)
	if len(got) == 0 || got[0].Name != "Back Squat" {
		t.Errorf("substring match should rank first, got %+v", got)
	}
}

func TestSearchExercisesTypo(t *testing.T) {
	got := searchExercises(searchLibrary, "dedlift", 8)
	found := false
	for _, ex := range got {
		if ex.Name == "Deadlift" {
			found = true
		}
	}
	if !found {
		t.Errorf("near-miss query should still surface Deadlift, got %+v", got)
	}
}

func TestSearchExercisesEmptyQueryCaps(t *testing.T) {
	got := searchExercises(searchLibrary, "", 3)
	if len(got) != 3 {
		t.Errorf("empty query should return the capped library, got %d", len(got))
	}
}

func TestSearchExercisesNoMatch(t *testing.T) {
	got := searchExercises(searchLibrary, "zzzzzzzzzzzz", 8)
	if len(got) != 0 {
		t.Errorf("hopeless query should return nothing, got %+v", got)
	}
}
