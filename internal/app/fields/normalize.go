// Package fields turns raw form or spreadsheet input into typed values.
package fields

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// numeric lists the keys parsed as numbers. part_qty is a whole count,
// the rest are decimals.
var numeric = map[string]bool{
	"part_qty":   true,
	"net_wt":     true,
	"gross_wt":   true,
	"total_cost": true,
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// maxExponent bounds parsed strings such as "1e900000000" whose
// expansion would be arbitrarily expensive.
const maxExponent = 30

// Normalize maps every empty string to nil and parses the numeric keys.
// A numeric value that cannot be parsed, is negative, is not finite or
// (for part_qty) is fractional becomes nil. All other values pass through.
// Normalize never fails and does not modify raw.
func Normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok && s == "" {
			out[key] = nil
			continue
		}
		if numeric[key] {
			out[key] = parseNumber(key, value)
			continue
		}
		out[key] = value
	}
	return out
}

func parseNumber(key string, value any) any {
	d, ok := toDecimal(value)
	if !ok || d.IsNegative() {
		return nil
	}
	if key == "part_qty" {
		if !d.IsInteger() || d.GreaterThan(maxInt64) {
			return nil
		}
		return d.IntPart()
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return f
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil || d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
			return decimal.Decimal{}, false
		}
		return d, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), true
	case uint32:
		return decimal.NewFromInt(int64(v)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), true
	default:
		return decimal.Decimal{}, false
	}
}
