package projections

import (
	"context"
	"time"

	"prodojo/internal/domain/schedule"
)

// ResolveWeekClassStore defines the class store interface needed by this projection.
type ResolveWeekClassStore interface {
	List(ctx context.Context) ([]schedule.ClassTemplate, error)
}

// ResolveWeekOverrideStore defines the override store interface needed by this projection.
type ResolveWeekOverrideStore interface {
	List(ctx context.Context) ([]schedule.Override, error)
}

// ResolveWeekDeps holds dependencies for the projection.
type ResolveWeekDeps struct {
	ClassStore    ResolveWeekClassStore
	OverrideStore ResolveWeekOverrideStore
}

// ResolvedWeek is the effective schedule for one Monday-anchored week.
type ResolvedWeek struct {
	WeekStart string                        `json:"week_start"` // Monday, YYYY-MM-DD
	Classes   []schedule.ResolvedOccurrence `json:"classes"`
}

// QueryResolveWeek loads templates and overrides, then resolves the week
// containing ref. Overrides from other weeks are loaded but have no effect
// on the result; resolution keys them by exact occurrence date.
func QueryResolveWeek(ctx context.Context, ref time.Time, deps ResolveWeekDeps) (ResolvedWeek, error) {
	templates, err := deps.ClassStore.List(ctx)
	if err != nil {
		return ResolvedWeek{}, err
	}
	overrides, err := deps.OverrideStore.List(ctx)
	if err != nil {
		return ResolvedWeek{}, err
	}

	monday := schedule.MondayOf(ref)
	return ResolvedWeek{
		WeekStart: monday.Format(schedule.DateFormat),
		Classes:   schedule.ResolveWeek(monday, templates, overrides),
	}, nil
}
