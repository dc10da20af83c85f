package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "erp.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := New(db)
	require.NoError(t, repo.AutoMigrate())
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// stores returns every Store implementation under a fresh state.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": newSQLiteRepository(t),
	}
}

func strPtr(s string) *string { return &s }

func newShipment(enquiry, mode, status string) *ds.Shipment {
	shipment := &ds.Shipment{
		EnquiryNo:      strPtr(enquiry),
		Status:         status,
		DeliveryStatus: ds.DeliveryInProcess,
	}
	if mode != "" {
		shipment.Mode = strPtr(mode)
	}
	return shipment
}

func TestStore_CreateAndGetShipment(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			qty := int64(10)
			shipment := newShipment("Q-1", "SEA", ds.StatusActive)
			shipment.PartQty = &qty

			require.NoError(t, store.CreateShipment(ctx, shipment))
			assert.NotZero(t, shipment.ID)

			got, err := store.GetShipment(ctx, shipment.ID)
			require.NoError(t, err)
			assert.Equal(t, "Q-1", *got.EnquiryNo)
			assert.Equal(t, int64(10), *got.PartQty)
			assert.Nil(t, got.Customer)
			assert.Equal(t, ds.StatusActive, got.Status)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestStore_GetShipmentNotFound(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.GetShipment(context.Background(), 999)
			assert.ErrorIs(t, err, apperr.ErrNotFound)
		})
	}
}

func TestStore_UpdateShipmentWritesOnlyGivenColumns(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			shipment := newShipment("Q-2", "AIR", ds.StatusActive)
			shipment.Customer = strPtr("Acme")
			require.NoError(t, store.CreateShipment(ctx, shipment))

			updated, err := store.UpdateShipment(ctx, shipment.ID, map[string]any{
				"delivery_status": ds.DeliveryInTransit,
				"mode":            nil,
			})
			require.NoError(t, err)

			assert.Equal(t, ds.DeliveryInTransit, updated.DeliveryStatus)
			assert.Nil(t, updated.Mode)
			require.NotNil(t, updated.Customer)
			assert.Equal(t, "Acme", *updated.Customer)
			assert.Equal(t, "Q-2", *updated.EnquiryNo)
			assert.Equal(t, ds.StatusActive, updated.Status)

			stored, err := store.GetShipment(ctx, shipment.ID)
			require.NoError(t, err)
			assert.Equal(t, updated.DeliveryStatus, stored.DeliveryStatus)
			assert.Nil(t, stored.Mode)
		})
	}
}

func TestStore_UpdateShipmentEmptyColumnsReturnsCurrent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			shipment := newShipment("Q-3", "SEA", ds.StatusActive)
			require.NoError(t, store.CreateShipment(ctx, shipment))

			got, err := store.UpdateShipment(ctx, shipment.ID, map[string]any{})
			require.NoError(t, err)
			assert.Equal(t, shipment.ID, got.ID)
			assert.Equal(t, "Q-3", *got.EnquiryNo)
		})
	}
}

func TestStore_UpdateShipmentNotFound(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.UpdateShipment(context.Background(), 42, map[string]any{"status": ds.StatusCancelled})
			assert.ErrorIs(t, err, apperr.ErrNotFound)
		})
	}
}

func TestStore_ListShipmentsNewestFirstWithFilters(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := newShipment("Q-10", "SEA", ds.StatusActive)
			second := newShipment("Q-11", "AIR", ds.StatusCancelled)
			third := newShipment("Q-12", "SEA", ds.StatusActive)
			third.BlNo = strPtr("BL-XYZ")
			for _, s := range []*ds.Shipment{first, second, third} {
				require.NoError(t, store.CreateShipment(ctx, s))
			}

			all, err := store.ListShipments(ctx, ds.ShipmentFilter{Limit: 10})
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, third.ID, all[0].ID)
			assert.Equal(t, first.ID, all[2].ID)

			active, err := store.ListShipments(ctx, ds.ShipmentFilter{Status: ds.StatusActive, Limit: 10})
			require.NoError(t, err)
			assert.Len(t, active, 2)

			air, err := store.ListShipments(ctx, ds.ShipmentFilter{Mode: "AIR", Limit: 10})
			require.NoError(t, err)
			require.Len(t, air, 1)
			assert.Equal(t, second.ID, air[0].ID)

			found, err := store.ListShipments(ctx, ds.ShipmentFilter{Search: "bl-x", Limit: 10})
			require.NoError(t, err)
			require.Len(t, found, 1)
			assert.Equal(t, third.ID, found[0].ID)

			limited, err := store.ListShipments(ctx, ds.ShipmentFilter{Limit: 2})
			require.NoError(t, err)
			assert.Len(t, limited, 2)
		})
	}
}

func TestStore_ListShipmentsMatchesWildcardsLiterally(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			promo := newShipment("Q_1", "SEA", ds.StatusActive)
			promo.Customer = strPtr("50%_off!")
			plain := newShipment("QX1", "SEA", ds.StatusActive)
			plain.Customer = strPtr("Acme Ltd")
			for _, s := range []*ds.Shipment{promo, plain} {
				require.NoError(t, store.CreateShipment(ctx, s))
			}

			for _, filter := range []ds.ShipmentFilter{
				{Search: "_"},
				{Search: "q_"},
				{Customer: "%"},
				{Customer: "_"},
				{Customer: "!"},
			} {
				filter.Limit = 10
				got, err := store.ListShipments(ctx, filter)
				require.NoError(t, err)
				require.Len(t, got, 1, "%+v", filter)
				assert.Equal(t, promo.ID, got[0].ID)
			}
		})
	}
}

func TestStore_DashboardSummary(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			empty, err := store.DashboardSummary(ctx)
			require.NoError(t, err)
			assert.Zero(t, empty.TotalShipments)
			assert.NotNil(t, empty.ModeWise)
			assert.NotNil(t, empty.StatusWise)

			for _, s := range []*ds.Shipment{
				newShipment("Q-1", "SEA", ds.StatusActive),
				newShipment("Q-2", "SEA", ds.StatusCancelled),
				newShipment("Q-3", "AIR", ds.StatusActive),
				newShipment("Q-4", "", ds.StatusActive),
			} {
				require.NoError(t, store.CreateShipment(ctx, s))
			}

			summary, err := store.DashboardSummary(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(4), summary.TotalShipments)

			require.Len(t, summary.ModeWise, 3)
			assert.Nil(t, summary.ModeWise[0].Mode)
			assert.Equal(t, int64(1), summary.ModeWise[0].Count)
			assert.Equal(t, "AIR", *summary.ModeWise[1].Mode)
			assert.Equal(t, "SEA", *summary.ModeWise[2].Mode)
			assert.Equal(t, int64(2), summary.ModeWise[2].Count)

			assert.Equal(t, []ds.StatusCount{
				{Status: ds.StatusActive, Count: 3},
				{Status: ds.StatusCancelled, Count: 1},
			}, summary.StatusWise)

			var modeTotal int64
			for _, m := range summary.ModeWise {
				modeTotal += m.Count
			}
			assert.Equal(t, summary.TotalShipments, modeTotal)
		})
	}
}

func TestStore_InsertPartIfAbsentFirstWriteWins(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.InsertPartIfAbsent(ctx, ds.Part{PartNo: "P-100", PartDesc: "Bolt"}))
			require.NoError(t, store.InsertPartIfAbsent(ctx, ds.Part{PartNo: "P-100", PartDesc: "Nut"}))

			part, err := store.GetPart(ctx, "P-100")
			require.NoError(t, err)
			assert.Equal(t, "Bolt", part.PartDesc)

			_, err = store.GetPart(ctx, "P-404")
			assert.ErrorIs(t, err, apperr.ErrNotFound)
		})
	}
}

func TestStore_ConcurrentPartInsertKeepsOneRow(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var wg sync.WaitGroup
			errs := make(chan error, 16)
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					errs <- store.InsertPartIfAbsent(ctx, ds.Part{PartNo: "P-RACE", PartDesc: "desc"})
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				assert.NoError(t, err)
			}

			if repo, ok := store.(*Repository); ok {
				var count int64
				require.NoError(t, repo.DB().Model(&ds.Part{}).Where("part_no = ?", "P-RACE").Count(&count).Error)
				assert.Equal(t, int64(1), count)
			}
			if mem, ok := store.(*MemoryStore); ok {
				assert.Equal(t, 1, mem.PartCount())
			}
		})
	}
}

func TestMemoryStore_CreatedBetween(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC)
	store := NewMemoryStore().WithClock(func() time.Time { return clock })

	require.NoError(t, store.CreateShipment(ctx, newShipment("Q-MAR", "SEA", ds.StatusActive)))
	clock = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateShipment(ctx, newShipment("Q-APR", "SEA", ds.StatusActive)))

	from := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	got, err := store.ShipmentsCreatedBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Q-APR", *got[0].EnquiryNo)

	count, err := store.CountShipmentsCreatedBetween(ctx, from.AddDate(0, -1, 0), to)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()
	err := store.CreateShipment(ctx, newShipment("Q-1", "", ds.StatusActive))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreError(t *testing.T) {
	assert.Nil(t, storeError(nil))
	assert.ErrorIs(t, storeError(gorm.ErrRecordNotFound), apperr.ErrNotFound)
	assert.ErrorIs(t, storeError(gorm.ErrDuplicatedKey), apperr.ErrValidation)
	assert.ErrorIs(t, storeError(gorm.ErrCheckConstraintViolated), apperr.ErrValidation)
	assert.ErrorIs(t, storeError(gorm.ErrInvalidDB), apperr.ErrStore)
	assert.ErrorIs(t, storeError(context.Canceled), context.Canceled)
}
