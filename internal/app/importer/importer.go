package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shipment_erp/internal/app/apperr"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Creator is the shipment create path each row is fed through.
type Creator interface {
	Create(ctx context.Context, raw map[string]any) (uint, error)
}

// Archiver keeps a copy of an uploaded file before it is parsed.
type Archiver interface {
	Archive(ctx context.Context, path string) (string, error)
}

// RowError reports one rejected row. Row is the 1-based index of the data
// row, the header not counted.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type Result struct {
	Inserted int        `json:"inserted"`
	Errors   []RowError `json:"errors"`
}

type Importer struct {
	creator  Creator
	archiver Archiver
}

func NewImporter(creator Creator) *Importer {
	return &Importer{creator: creator}
}

// WithArchiver enables archiving of uploads; nil disables it.
func (i *Importer) WithArchiver(archiver Archiver) *Importer {
	i.archiver = archiver
	return i
}

// ImportFile creates one shipment per data row of the first sheet. A bad
// row is recorded and skipped. The file at path is always removed.
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.WithFields(logrus.Fields{"path": path, "error": err}).Warn("upload cleanup failed")
		}
	}()

	result := Result{Errors: []RowError{}}

	if i.archiver != nil {
		if object, err := i.archiver.Archive(ctx, path); err != nil {
			logrus.WithFields(logrus.Fields{"path": path, "error": err}).Warn("upload archive failed")
		} else {
			logrus.WithField("object", object).Info("upload archived")
		}
	}

	rows, err := ReadRows(path)
	if err != nil {
		return result, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := i.creator.Create(ctx, row.Fields); err != nil {
			result.Errors = append(result.Errors, RowError{Row: row.Line, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	logrus.WithFields(logrus.Fields{
		"rows":     len(rows),
		"inserted": result.Inserted,
		"failed":   len(result.Errors),
	}).Info("bulk import finished")
	return result, nil
}

// Row is one data row. Line is its 1-based position below the header,
// blank rows counted.
type Row struct {
	Line   int
	Fields map[string]any
}

// ReadRows returns the data rows of a .csv file or of the first sheet of a
// workbook. Blank rows are dropped but keep their line numbers.
func ReadRows(path string) ([]Row, error) {
	var table [][]string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		table, err = readCSV(path)
	} else {
		table, err = readWorkbook(path)
	}
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return []Row{}, nil
	}

	header := make([]string, len(table[0]))
	for i, cell := range table[0] {
		header[i] = HeaderKey(cell)
	}

	rows := make([]Row, 0, len(table)-1)
	for n, cells := range table[1:] {
		if blank(cells) {
			continue
		}
		row := make(map[string]any, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			row[key] = value
		}
		rows = append(rows, Row{Line: n + 1, Fields: row})
	}
	return rows, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	// сырые значения: форматирование ячеек ("1,500.00") ломает разбор чисел
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var table [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, err
		}
		table = append(table, record)
	}
}

// headerAliases maps spreadsheet captions that differ from column names.
var headerAliases = map[string]string{
	"qmrel_no":         "enquiry_no",
	"enquiry_number":   "enquiry_no",
	"forwarder":        "freight_forwarder",
	"bl_number":        "bl_no",
	"container_number": "container_no",
}

// HeaderKey turns a caption such as "Part No" into a column key (part_no).
func HeaderKey(caption string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(caption)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	key := b.String()
	if alias, ok := headerAliases[key]; ok {
		return alias
	}
	return key
}

func blank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
