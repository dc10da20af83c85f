package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/ds"
	"shipment_erp/internal/app/repository"
	"shipment_erp/internal/app/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newService() (*service.ShipmentService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return service.NewShipmentService(store, service.NewPartReconciler(store), 0), store
}

type countingArchiver struct {
	calls int
	err   error
}

func (a *countingArchiver) Archive(_ context.Context, path string) (string, error) {
	a.calls++
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return "bulk/test" + filepath.Ext(path), a.err
}

func TestImportFile_RowIsolation(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Enquiry No", "Part No", "Part Desc", "Part Qty", "Status"},
		{"Q-1", "P1", "Bolt", "10", ""},
		{"Q-2", "P2", "Nut", "5", "BROKEN"},
		{"Q-3", "P3", "Washer", "2", "CANCELLED"},
	})
	svc, store := newService()

	result, err := NewImporter(svc).ImportFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Inserted)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Reason, "status")

	shipments, err := store.ListShipments(context.Background(), ds.ShipmentFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, shipments, 2)
	statuses := map[string]string{}
	for _, s := range shipments {
		statuses[*s.EnquiryNo] = s.Status
	}
	assert.Equal(t, map[string]string{"Q-1": ds.StatusActive, "Q-3": ds.StatusCancelled}, statuses)

	assert.Equal(t, 2, store.PartCount())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "upload must be removed")
}

func TestImportFile_CSV(t *testing.T) {
	path := writeFile(t, "upload.csv", "enquiry_no,ff,net_wt\nQ-1,DHL,50.5\n,,\nQ-2,,abc\n")
	svc, store := newService()

	result, err := NewImporter(svc).ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Empty(t, result.Errors)

	shipments, err := store.ListShipments(context.Background(), ds.ShipmentFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, shipments, 2)
	for _, s := range shipments {
		if *s.EnquiryNo == "Q-1" {
			assert.Equal(t, "DHL", *s.FreightForwarder)
			assert.Equal(t, 50.5, *s.NetWt)
		} else {
			assert.Nil(t, s.NetWt)
			assert.Nil(t, s.FreightForwarder)
		}
	}
}

func TestImportFile_UnreadableFileIsRemoved(t *testing.T) {
	path := writeFile(t, "upload.xlsx", "not a workbook")
	svc, _ := newService()

	_, err := NewImporter(svc).ImportFile(context.Background(), path)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportFile_CanceledContext(t *testing.T) {
	path := writeFile(t, "upload.csv", "enquiry_no\nQ-1\nQ-2\n")
	svc, store := newService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewImporter(svc).ImportFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Inserted)

	shipments, listErr := store.ListShipments(context.Background(), ds.ShipmentFilter{Limit: 10})
	require.NoError(t, listErr)
	assert.Empty(t, shipments)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportFile_ArchiveIsBestEffort(t *testing.T) {
	path := writeFile(t, "upload.csv", "enquiry_no\nQ-1\n")
	svc, _ := newService()
	archiver := &countingArchiver{err: errors.New("bucket offline")}

	result, err := NewImporter(svc).WithArchiver(archiver).ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, archiver.calls)
	assert.Equal(t, 1, result.Inserted)
}

func TestReadRows_ShortRowsAndBlankLines(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"BL No", "Container No", "ETA"},
		{"BL-1"},
		{"", "", ""},
		{"BL-2", "C-2", "2024-06-01"},
	})

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]any{"bl_no": "BL-1", "container_no": "", "eta": ""}, rows[0].Fields)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "C-2", rows[1].Fields["container_no"])
	assert.Equal(t, 3, rows[1].Line)
}

func TestImportFile_RowNumbersCountBlankRows(t *testing.T) {
	path := writeFile(t, "upload.csv", "enquiry_no,status\nQ-1,\n,\nQ-3,BROKEN\n")
	svc, _ := newService()

	result, err := NewImporter(svc).ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
}

func TestImportFile_FormattedNumbersKeepValues(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Enquiry No", "Part Qty", "Total Cost"}))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Q-1"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 1500))
	require.NoError(t, f.SetCellValue(sheet, "C2", 2500.5))
	// #,##0.00
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "C2", style))
	path := filepath.Join(t.TempDir(), "styled.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	svc, store := newService()
	result, err := NewImporter(svc).ImportFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)
	assert.Empty(t, result.Errors)

	shipments, err := store.ListShipments(context.Background(), ds.ShipmentFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	require.NotNil(t, shipments[0].PartQty)
	assert.Equal(t, int64(1500), *shipments[0].PartQty)
	require.NotNil(t, shipments[0].TotalCost)
	assert.Equal(t, 2500.5, *shipments[0].TotalCost)
}

func TestHeaderKey(t *testing.T) {
	tests := map[string]string{
		"Part No":         "part_no",
		"  Gross Wt. ":    "gross_wt",
		"delivery-status": "delivery_status",
		"QMRel No":        "enquiry_no",
		"FF":              "ff",
		"***":             "",
	}
	for caption, want := range tests {
		assert.Equal(t, want, HeaderKey(caption), caption)
	}
	// byte order mark written by some spreadsheet exports
	assert.Equal(t, "enquiry_no", HeaderKey("\ufeffenquiry_no"))
}

func TestObjectName(t *testing.T) {
	at := time.Date(2024, time.July, 9, 15, 0, 0, 0, time.UTC)
	name := ObjectName(at, "/tmp/uploads/Sheet.XLSX")

	assert.True(t, strings.HasPrefix(name, "bulk/2024-07-09/"), name)
	assert.True(t, strings.HasSuffix(name, ".xlsx"), name)
}
