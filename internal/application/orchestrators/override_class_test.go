package orchestrators

import (
	"context"
	"errors"
	"testing"

	"prodojo/internal/domain/schedule"
)

// mockClassStore implements ClassStoreForOverride for testing.
type mockClassStore struct {
	classes map[string]schedule.ClassTemplate
}

// GetByID implements ClassStoreForOverride.
// POST: returns template or error
func (m *mockClassStore) GetByID(_ context.Context, id string) (schedule.ClassTemplate, error) {
	c, ok := m.classes[id]
	if !ok {
		return schedule.ClassTemplate{}, errors.New("not found")
	}
	return c, nil
}

// mockOverrideStore implements OverrideStoreForWrite for testing. It
// enforces the one-override-per-occurrence rule the way the SQLite store
// does with its unique index.
type mockOverrideStore struct {
	overrides map[string]schedule.Override // keyed by ID
}

func newMockOverrideStore() *mockOverrideStore {
	return &mockOverrideStore{overrides: make(map[string]schedule.Override)}
}

// Insert implements OverrideStoreForWrite.
// POST: override is stored, or ErrDuplicateOverride for a taken occurrence
func (m *mockOverrideStore) Insert(_ context.Context, o schedule.Override) error {
	for _, existing := range m.overrides {
		if existing.ClassID == o.ClassID && existing.Date == o.Date {
			return schedule.ErrDuplicateOverride
		}
	}
	m.overrides[o.ID] = o
	return nil
}

// Delete implements OverrideStoreForWrite.
// POST: returns true if an override was removed
func (m *mockOverrideStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.overrides[id]; !ok {
		return false, nil
	}
	delete(m.overrides, id)
	return true, nil
}

func overrideTestDeps() (OverrideDeps, *mockOverrideStore) {
	overrides := newMockOverrideStore()
	classes := &mockClassStore{classes: map[string]schedule.ClassTemplate{
		"class-001": {ID: "class-001", Day: schedule.Monday, Time: "6:00 PM - 8:00 PM", Title: "Beginner Pro Wrestling", Instructor: "Coach Mike", Level: schedule.LevelBeginner, Spots: 8},
	}}
	return OverrideDeps{ClassStore: classes, OverrideStore: overrides}, overrides
}

// TestExecuteCancelClass_Valid verifies cancelling stores a cancelled
// override with the given reason.
func TestExecuteCancelClass_Valid(t *testing.T) {
	deps, store := overrideTestDeps()

	o, err := ExecuteCancelClass(context.Background(), CancelClassInput{
		ClassID: "class-001",
		Date:    "2025-03-03",
		Reason:  "Coach away",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != schedule.StatusCancelled {
		t.Errorf("Status = %q, want cancelled", o.Status)
	}
	if o.Reason != "Coach away" {
		t.Errorf("Reason = %q, want \"Coach away\"", o.Reason)
	}
	if _, ok := store.overrides[o.ID]; !ok {
		t.Error("override not persisted")
	}
}

// TestExecuteCancelClass_DefaultReason verifies a blank reason is replaced
// with the stock one.
func TestExecuteCancelClass_DefaultReason(t *testing.T) {
	deps, _ := overrideTestDeps()

	o, err := ExecuteCancelClass(context.Background(), CancelClassInput{
		ClassID: "class-001",
		Date:    "2025-03-03",
		Reason:  "   ",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Reason != schedule.DefaultReason {
		t.Errorf("Reason = %q, want %q", o.Reason, schedule.DefaultReason)
	}
}

// TestExecuteCancelClass_UnknownClass verifies overrides cannot target a
// class that does not exist.
func TestExecuteCancelClass_UnknownClass(t *testing.T) {
	deps, _ := overrideTestDeps()

	_, err := ExecuteCancelClass(context.Background(), CancelClassInput{
		ClassID: "nope",
		Date:    "2025-03-03",
	}, deps)
	if err != ErrClassNotFound {
		t.Errorf("error = %v, want ErrClassNotFound", err)
	}
}

// TestExecuteCancelClass_Duplicate verifies a second override for the same
// occurrence is rejected.
func TestExecuteCancelClass_Duplicate(t *testing.T) {
	deps, _ := overrideTestDeps()

	input := CancelClassInput{ClassID: "class-001", Date: "2025-03-03"}
	if _, err := ExecuteCancelClass(context.Background(), input, deps); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if _, err := ExecuteCancelClass(context.Background(), input, deps); err != schedule.ErrDuplicateOverride {
		t.Errorf("second cancel error = %v, want ErrDuplicateOverride", err)
	}
}

// TestExecuteRescheduleClass_Valid verifies rescheduling stores the new time.
func TestExecuteRescheduleClass_Valid(t *testing.T) {
	deps, _ := overrideTestDeps()

	o, err := ExecuteRescheduleClass(context.Background(), RescheduleClassInput{
		ClassID: "class-001",
		Date:    "2025-03-03",
		NewTime: "7:00 PM - 9:00 PM",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != schedule.StatusRescheduled {
		t.Errorf("Status = %q, want rescheduled", o.Status)
	}
	if o.RescheduledTime != "7:00 PM - 9:00 PM" {
		t.Errorf("RescheduledTime = %q", o.RescheduledTime)
	}
}

// TestExecuteRescheduleClass_MissingTime verifies a reschedule without a
// new time fails validation.
func TestExecuteRescheduleClass_MissingTime(t *testing.T) {
	deps, _ := overrideTestDeps()

	_, err := ExecuteRescheduleClass(context.Background(), RescheduleClassInput{
		ClassID: "class-001",
		Date:    "2025-03-03",
	}, deps)
	if err != schedule.ErrMissingNewTime {
		t.Errorf("error = %v, want ErrMissingNewTime", err)
	}
}

// TestExecuteRestoreClass_Roundtrip verifies cancel then restore removes
// the override, and restoring again reports not found.
func TestExecuteRestoreClass_Roundtrip(t *testing.T) {
	deps, store := overrideTestDeps()

	o, err := ExecuteCancelClass(context.Background(), CancelClassInput{
		ClassID: "class-001",
		Date:    "2025-03-03",
	}, deps)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if err := ExecuteRestoreClass(context.Background(), o.ID, deps); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(store.overrides) != 0 {
		t.Errorf("overrides remaining = %d, want 0", len(store.overrides))
	}
	if err := ExecuteRestoreClass(context.Background(), o.ID, deps); err != schedule.ErrOverrideNotFound {
		t.Errorf("second restore error = %v, want ErrOverrideNotFound", err)
	}
}

// TestExecuteRestoreClass_ThenCancelAgain verifies the occurrence is free
// for a new override after restore.
func TestExecuteRestoreClass_ThenCancelAgain(t *testing.T) {
	deps, _ := overrideTestDeps()

	input := CancelClassInput{ClassID: "class-001", Date: "2025-03-03"}
	o, err := ExecuteCancelClass(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := ExecuteRestoreClass(context.Background(), o.ID, deps); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := ExecuteCancelClass(context.Background(), input, deps); err != nil {
		t.Errorf("re-cancel after restore: %v", err)
	}
}
