package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"
	"shipment_erp/internal/app/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Monthly(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)
	store := repository.NewMemoryStore().WithClock(func() time.Time { return clock })
	svc := newTestService(store)

	_, err := svc.Create(ctx, map[string]any{"enquiry_no": "Q-FEB"})
	require.NoError(t, err)
	clock = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, map[string]any{"enquiry_no": "Q-MAR"})
	require.NoError(t, err)

	reports := NewReportService(store)
	feb, err := reports.Monthly(ctx, 2, 2024)
	require.NoError(t, err)
	require.Len(t, feb, 1)
	assert.Equal(t, "Q-FEB", *feb[0].EnquiryNo)

	_, err = reports.Monthly(ctx, 13, 2024)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = reports.Monthly(ctx, 1, 0)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestWriteCSV(t *testing.T) {
	qty := int64(3)
	cost := 1250.5
	created := time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC)
	shipments := []ds.Shipment{{
		ID:             7,
		EnquiryNo:      strPtr("Q-1"),
		Customer:       strPtr("Acme, Ltd"),
		PartQty:        &qty,
		TotalCost:      &cost,
		Status:         ds.StatusActive,
		DeliveryStatus: ds.DeliveryInTransit,
		CreatedAt:      created,
		UpdatedAt:      created,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, shipments))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, reportHeader, rows[0])

	row := map[string]string{}
	for i, column := range rows[0] {
		row[column] = rows[1][i]
	}
	assert.Equal(t, "7", row["id"])
	assert.Equal(t, "Acme, Ltd", row["customer"])
	assert.Equal(t, "3", row["part_qty"])
	assert.Equal(t, "1250.5", row["total_cost"])
	assert.Equal(t, "", row["net_wt"])
	assert.Equal(t, ds.DeliveryInTransit, row["delivery_status"])
	assert.Equal(t, "2024-05-02T10:00:00Z", row["created_at"])
}

func TestEnquiryNumbers_FromStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := newTestService(store)
	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, map[string]any{})
		require.NoError(t, err)
	}

	numbers := NewEnquiryNumbers(NewStoreSequence(store))
	numbers.now = func() time.Time { return time.Now().UTC() }

	got, err := numbers.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, FormatEnquiryNo(time.Now().UTC().Year(), 3), got)
}

func TestEnquiryNumbers_RedisFallsBackToStore(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	store := repository.NewMemoryStore()
	numbers := NewEnquiryNumbers(NewRedisSequence(client, NewStoreSequence(store)))
	numbers.now = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }

	got, err := numbers.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "QMRel-2025-0001", got)
}

func TestFormatEnquiryNo(t *testing.T) {
	assert.Equal(t, "QMRel-2024-0001", FormatEnquiryNo(2024, 1))
	assert.Equal(t, "QMRel-2024-12345", FormatEnquiryNo(2024, 12345))
}

func strPtr(s string) *string { return &s }
