package calc

import (
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// ParsePrice turns an arbitrary price value into a decimal. Only numeric
// values are honoured; anything else, including NaN and infinities, is
// treated as a zero price instead of an error.
func ParsePrice(value interface{}) decimal.Decimal {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int8:
		return decimal.NewFromInt(int64(v))
	case int16:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return decimal.NewFromInt(int64(v))
	case uint16:
		return decimal.NewFromInt(int64(v))
	case uint32:
		return decimal.NewFromInt(int64(v))
	case uint64:
		return fromUint(v)
	default:
		return parseNumericKind(value)
	}
}

// parseNumericKind handles named numeric types such as `type Price float64`.
func parseNumericKind(value interface{}) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		if rv.Kind() == reflect.Float32 {
			return decimal.NewFromFloat32(float32(f))
		}
		return decimal.NewFromFloat(f)
	default:
		return decimal.Zero
	}
}

func fromUint(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
