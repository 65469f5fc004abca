package prefabs

import (
	"math"
	"strconv"
	"strings"
)

// Values is a flattened configuration: nested sections become dotted keys
// ("enemy.bullet.speed"). Section keys themselves are present too, so Has
// can gate whole entities.
type Values map[string]any

// Has reports whether key exists, either as a leaf or as a section.
func (v Values) Has(key string) bool {
	if v == nil {
		return false
	}
	_, ok := v[key]
	return ok
}

// Float returns the numeric value at key, or def when it is missing or not a
// number.
func (v Values) Float(key string, def float64) float64 {
	f, ok := toFloat(v.get(key))
	if !ok {
		return def
	}
	return f
}

// Int truncates the numeric value at key. Values outside the int32 range
// return def.
func (v Values) Int(key string, def int) int {
	f, ok := toFloat(v.get(key))
	if !ok || f < math.MinInt32 || f > math.MaxInt32 {
		return def
	}
	return int(f)
}

// Uint returns def for negative or non-numeric values.
func (v Values) Uint(key string, def uint32) uint32 {
	f, ok := toFloat(v.get(key))
	if !ok || f < 0 || f > math.MaxUint32 {
		return def
	}
	return uint32(f)
}

// Positive returns def unless the value at key is a number above zero.
func (v Values) Positive(key string, def float64) float64 {
	f, ok := toFloat(v.get(key))
	if !ok || f <= 0 {
		return def
	}
	return f
}

func (v Values) String(key, def string) string {
	switch s := v.get(key).(type) {
	case string:
		return s
	case nil:
		return def
	default:
		if f, ok := toFloat(s); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return def
	}
}

// Floats returns def unless every element of the list at key is numeric.
func (v Values) Floats(key string, def []float64) []float64 {
	list, ok := v.get(key).([]any)
	if !ok {
		return def
	}
	out := make([]float64, 0, len(list))
	for _, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return def
		}
		out = append(out, f)
	}
	return out
}

// List returns the raw list at key.
func (v Values) List(key string) []any {
	list, _ := v.get(key).([]any)
	return list
}

func (v Values) get(key string) any {
	if v == nil {
		return nil
	}
	return v[key]
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return toFloat(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return toFloat(f)
	default:
		return 0, false
	}
}
