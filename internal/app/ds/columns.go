package ds

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

type columnKind int

const (
	textColumn columnKind = iota
	numberColumn
)

// shipmentColumns lists every column a client may write. id and the
// timestamps are server-assigned and never accepted from input.
var shipmentColumns = map[string]columnKind{
	"enquiry_no":        textColumn,
	"freight_forwarder": textColumn,
	"customer":          textColumn,
	"invoice_no":        textColumn,
	"invoice_date":      textColumn,
	"part_no":           textColumn,
	"part_desc":         textColumn,
	"part_qty":          numberColumn,
	"box_size":          textColumn,
	"net_wt":            numberColumn,
	"gross_wt":          numberColumn,
	"package_type":      textColumn,
	"mode":              textColumn,
	"dispatch_date":     textColumn,
	"incoterm":          textColumn,
	"sb_no":             textColumn,
	"sb_date":           textColumn,
	"etd":               textColumn,
	"bl_no":             textColumn,
	"container_no":      textColumn,
	"eta":               textColumn,
	"final_delivery":    textColumn,
	"total_cost":        numberColumn,
	"status":            textColumn,
	"delivery_status":   textColumn,
	"manual_desc":       textColumn,
}

// columnAliases maps legacy input keys onto column names.
var columnAliases = map[string]string{
	"ff": "freight_forwarder",
}

// ShipmentColumns turns normalized input into a column->value map that
// only holds writable shipment columns. Unknown keys are dropped, aliases
// are resolved (an explicit column name wins over its alias) and scalar
// values in text columns are coerced to strings.
func ShipmentColumns(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		column := key
		if canonical, ok := columnAliases[key]; ok {
			if _, explicit := fields[canonical]; explicit {
				continue
			}
			column = canonical
		}
		kind, ok := shipmentColumns[column]
		if !ok {
			continue
		}
		if value == nil {
			out[column] = nil
			continue
		}
		switch kind {
		case textColumn:
			switch value.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%s: expected a scalar value", key)
			}
			s, err := cast.ToStringE(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[column] = s
		case numberColumn:
			out[column] = value
		}
	}
	return out, nil
}

// SortModeCounts orders counts with the NULL mode first, then by name.
func SortModeCounts(counts []ModeCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		a, b := counts[i].Mode, counts[j].Mode
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return *a < *b
	})
}

func SortStatusCounts(counts []StatusCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Status < counts[j].Status
	})
}
