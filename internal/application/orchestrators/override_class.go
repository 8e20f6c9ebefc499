package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"prodojo/internal/domain/schedule"

	"github.com/google/uuid"
)

// ClassStoreForOverride defines the class store interface needed by the
// override orchestrators.
type ClassStoreForOverride interface {
	GetByID(ctx context.Context, id string) (schedule.ClassTemplate, error)
}

// OverrideStoreForWrite defines the override store interface needed by the
// override orchestrators.
type OverrideStoreForWrite interface {
	Insert(ctx context.Context, o schedule.Override) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ErrClassNotFound is returned when an override targets an unknown class.
var ErrClassNotFound = errors.New("class not found")

// CancelClassInput carries input for cancelling one occurrence.
type CancelClassInput struct {
	ClassID string
	Date    string // YYYY-MM-DD
	Reason  string
}

// RescheduleClassInput carries input for rescheduling one occurrence.
type RescheduleClassInput struct {
	ClassID string
	Date    string // YYYY-MM-DD
	Reason  string
	NewTime string // "6:00 PM - 8:00 PM"
}

// OverrideDeps holds dependencies for the override orchestrators.
type OverrideDeps struct {
	ClassStore    ClassStoreForOverride
	OverrideStore OverrideStoreForWrite
}

// ExecuteCancelClass marks one occurrence of a class as cancelled.
// PRE: ClassID refers to an existing template; Date is YYYY-MM-DD
// POST: An override row exists, or ErrDuplicateOverride if the occurrence
// already has one
func ExecuteCancelClass(ctx context.Context, input CancelClassInput, deps OverrideDeps) (schedule.Override, error) {
	if _, err := deps.ClassStore.GetByID(ctx, input.ClassID); err != nil {
		return schedule.Override{}, ErrClassNotFound
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = schedule.DefaultReason
	}

	override := schedule.Override{
		ID:        uuid.New().String(),
		ClassID:   input.ClassID,
		Date:      input.Date,
		Status:    schedule.StatusCancelled,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := override.Validate(); err != nil {
		return schedule.Override{}, err
	}
	if err := deps.OverrideStore.Insert(ctx, override); err != nil {
		return schedule.Override{}, err
	}

	slog.Info("schedule_event", "event", "class_cancelled", "class_id", input.ClassID, "date", input.Date)
	return override, nil
}

// ExecuteRescheduleClass moves one occurrence of a class to a new time.
// PRE: ClassID refers to an existing template; NewTime parses as a range
// POST: An override row exists, or ErrDuplicateOverride if the occurrence
// already has one
func ExecuteRescheduleClass(ctx context.Context, input RescheduleClassInput, deps OverrideDeps) (schedule.Override, error) {
	if _, err := deps.ClassStore.GetByID(ctx, input.ClassID); err != nil {
		return schedule.Override{}, ErrClassNotFound
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = schedule.DefaultReason
	}

	override := schedule.Override{
		ID:              uuid.New().String(),
		ClassID:         input.ClassID,
		Date:            input.Date,
		Status:          schedule.StatusRescheduled,
		Reason:          reason,
		RescheduledTime: input.NewTime,
		CreatedAt:       time.Now().UTC(),
	}
	if err := override.Validate(); err != nil {
		return schedule.Override{}, err
	}
	if err := deps.OverrideStore.Insert(ctx, override); err != nil {
		return schedule.Override{}, err
	}

	slog.Info("schedule_event", "event", "class_rescheduled", "class_id", input.ClassID, "date", input.Date, "new_time", input.NewTime)
	return override, nil
}

// ExecuteRestoreClass removes an override, restoring the occurrence to its
// template schedule.
// POST: Returns ErrOverrideNotFound when no such override exists, including
// when it was already restored
func ExecuteRestoreClass(ctx context.Context, overrideID string, deps OverrideDeps) error {
	deleted, err := deps.OverrideStore.Delete(ctx, overrideID)
	if err != nil {
		return err
	}
	if !deleted {
		return schedule.ErrOverrideNotFound
	}

	slog.Info("schedule_event", "event", "class_restored", "override_id", overrideID)
	return nil
}
