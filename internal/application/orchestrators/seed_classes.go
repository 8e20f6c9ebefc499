package orchestrators

import (
	"context"
	"log/slog"

	"prodojo/internal/domain/schedule"

	"github.com/google/uuid"
)

// ClassStoreForSeed defines the store interface needed by SeedClasses.
type ClassStoreForSeed interface {
	Save(ctx context.Context, c schedule.ClassTemplate) error
	List(ctx context.Context) ([]schedule.ClassTemplate, error)
}

// SeedClassesDeps holds dependencies for SeedClasses.
type SeedClassesDeps struct {
	ClassStore ClassStoreForSeed
}

// ExecuteSeedClasses creates the default weekly schedule if no classes exist.
func ExecuteSeedClasses(ctx context.Context, deps SeedClassesDeps) error {
	existing, err := deps.ClassStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}

	defaults := []schedule.ClassTemplate{
		// Pro wrestling
		{Day: schedule.Monday, Time: "6:00 PM - 8:00 PM", Title: "Beginner Pro Wrestling", Instructor: "Coach Mike", Level: schedule.LevelBeginner, Spots: 8, ClassType: "wrestling"},
		{Day: schedule.Monday, Time: "8:00 PM - 10:00 PM", Title: "Advanced Pro Wrestling", Instructor: "Coach Sarah", Level: schedule.LevelAdvanced, Spots: 5, ClassType: "wrestling"},
		{Day: schedule.Tuesday, Time: "7:00 PM - 9:00 PM", Title: "High-Flying & Lucha", Instructor: "Coach James", Level: schedule.LevelIntermediate, Spots: 6, ClassType: "wrestling"},
		{Day: schedule.Wednesday, Time: "6:00 PM - 8:00 PM", Title: "Ring Psychology & Promos", Instructor: "Coach Mike", Level: schedule.LevelAllLevels, Spots: 10, ClassType: "wrestling"},
		{Day: schedule.Thursday, Time: "7:00 PM - 9:00 PM", Title: "Technical Wrestling", Instructor: "Coach Sarah", Level: schedule.LevelIntermediate, Spots: 7, ClassType: "wrestling"},
		{Day: schedule.Friday, Time: "6:00 PM - 8:00 PM", Title: "Pro Wrestling Fundamentals", Instructor: "Coach Mike", Level: schedule.LevelBeginner, Spots: 8, ClassType: "wrestling"},
		{Day: schedule.Friday, Time: "8:00 PM - 10:00 PM", Title: "Pro Wrestling Sparring", Instructor: "All Coaches", Level: schedule.LevelAdvanced, Spots: 10, ClassType: "wrestling"},
		{Day: schedule.Saturday, Time: "10:00 AM - 12:00 PM", Title: "Pro Pathway Weekend Training", Instructor: "Coach James", Level: schedule.LevelAllLevels, Spots: 15, ClassType: "wrestling"},
		// Boxing
		{Day: schedule.Monday, Time: "5:00 PM - 6:30 PM", Title: "Boxing Beginners", Instructor: "Coach Tony", Level: schedule.LevelBeginner, Spots: 12, ClassType: "boxing"},
		{Day: schedule.Tuesday, Time: "6:00 PM - 7:30 PM", Title: "Advanced Boxing", Instructor: "Coach Tony", Level: schedule.LevelAdvanced, Spots: 8, ClassType: "boxing"},
		{Day: schedule.Wednesday, Time: "5:00 PM - 6:30 PM", Title: "Boxing Technique", Instructor: "Coach Marcus", Level: schedule.LevelIntermediate, Spots: 10, ClassType: "boxing"},
		{Day: schedule.Thursday, Time: "6:00 PM - 7:30 PM", Title: "Boxing Sparring", Instructor: "Coach Tony", Level: schedule.LevelAdvanced, Spots: 6, ClassType: "boxing"},
		{Day: schedule.Saturday, Time: "9:00 AM - 10:30 AM", Title: "Self-Defense Boxing", Instructor: "Coach Marcus", Level: schedule.LevelAllLevels, Spots: 15, ClassType: "boxing"},
		// Fitness
		{Day: schedule.Wednesday, Time: "8:00 PM - 10:00 PM", Title: "Strength & Conditioning", Instructor: "Coach Tony", Level: schedule.LevelAllLevels, Spots: 12, ClassType: "fitness"},
		{Day: schedule.Saturday, Time: "2:00 PM - 4:00 PM", Title: "Pro Athlete Training", Instructor: "Coach Sarah", Level: schedule.LevelAdvanced, Spots: 5, ClassType: "fitness"},
	}

	for i := range defaults {
		defaults[i].ID = uuid.New().String()
		if err := deps.ClassStore.Save(ctx, defaults[i]); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "classes_seeded", "classes", len(defaults))
	return nil
}
