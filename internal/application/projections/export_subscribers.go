package projections

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"prodojo/internal/domain/newsletter"

	"github.com/xuri/excelize/v2"
)

// ExportSubscriptionStore defines the store interface needed by this projection.
type ExportSubscriptionStore interface {
	List(ctx context.Context) ([]newsletter.Subscription, error)
}

// ExportSubscribersDeps holds dependencies for the projection.
type ExportSubscribersDeps struct {
	SubscriptionStore ExportSubscriptionStore
}

// QueryExportSubscribersCSV renders the subscriber list as CSV with a
// header row.
func QueryExportSubscribersCSV(ctx context.Context, deps ExportSubscribersDeps) ([]byte, error) {
	subs, err := deps.SubscriptionStore.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"email", "subscribed_at"}); err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if err := w.Write([]string{sub.Email, sub.SubscribedAt.UTC().Format(time.RFC3339)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// QueryExportSubscribersXLSX renders the subscriber list as an Excel
// workbook with one Subscribers sheet.
func QueryExportSubscribersXLSX(ctx context.Context, deps ExportSubscribersDeps) ([]byte, error) {
	subs, err := deps.SubscriptionStore.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Subscribers"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Email", "Subscribed At"}); err != nil {
		return nil, err
	}
	for i, sub := range subs {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{sub.Email, sub.SubscribedAt.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
