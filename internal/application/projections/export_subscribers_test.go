package projections

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"prodojo/internal/domain/newsletter"

	"github.com/xuri/excelize/v2"
)

// mockExportStore implements ExportSubscriptionStore for testing.
type mockExportStore struct {
	subs []newsletter.Subscription
}

func (m *mockExportStore) List(_ context.Context) ([]newsletter.Subscription, error) {
	return m.subs, nil
}

func exportTestDeps() ExportSubscribersDeps {
	return ExportSubscribersDeps{SubscriptionStore: &mockExportStore{subs: []newsletter.Subscription{
		{ID: "sub-001", Email: "a@example.com", SubscribedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "sub-002", Email: "b@example.com", SubscribedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)},
	}}}
}

// TestQueryExportSubscribersCSV verifies the CSV has a header plus one row
// per subscriber.
func TestQueryExportSubscribersCSV(t *testing.T) {
	data, err := QueryExportSubscribersCSV(context.Background(), exportTestDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want 3 (header + 2)", len(records))
	}
	if records[0][0] != "email" {
		t.Errorf("header = %q, want email", records[0][0])
	}
	if records[1][0] != "a@example.com" {
		t.Errorf("row 1 email = %q", records[1][0])
	}
	if records[2][1] != "2025-03-02T10:00:00Z" {
		t.Errorf("row 2 subscribed_at = %q", records[2][1])
	}
}

// TestQueryExportSubscribersCSV_Empty verifies an empty list still yields
// the header row.
func TestQueryExportSubscribersCSV_Empty(t *testing.T) {
	deps := ExportSubscribersDeps{SubscriptionStore: &mockExportStore{}}
	data, err := QueryExportSubscribersCSV(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("rows = %d, want 1", len(records))
	}
}

// TestQueryExportSubscribersXLSX verifies the workbook carries a
// Subscribers sheet with the expected cells.
func TestQueryExportSubscribersXLSX(t *testing.T) {
	data, err := QueryExportSubscribersXLSX(context.Background(), exportTestDeps())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Subscribers", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "a@example.com" {
		t.Errorf("A2 = %q, want a@example.com", got)
	}
	rows, err := f.GetRows("Subscribers")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d, want 3 (header + 2)", len(rows))
	}
}
