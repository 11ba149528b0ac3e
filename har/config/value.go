package config

import (
	"fmt"
	"math"

	"github.com/viant/harconfig/har/schema"
	"github.com/viant/harconfig/internal/conv"
)

// coerce converts a decoded value into the canonical Go type of the
// parameter kind: int, float64, bool or []int.
func coerce(p *schema.Parameter, raw interface{}) (interface{}, bool) {
	var (
		value interface{}
		ok    bool
	)
	switch p.Kind {
	case schema.Int:
		value, ok = conv.Int(raw)
	case schema.Float:
		value, ok = conv.Float(raw)
	case schema.Bool:
		value, ok = conv.Bool(raw)
	case schema.IntList:
		value, ok = conv.Ints(raw)
	}
	if !ok {
		return nil, false
	}
	return value, true
}

// checkRange returns a non-empty reason when a canonical value falls outside
// the parameter bounds.
func checkRange(p *schema.Parameter, value interface{}) string {
	var numbers []float64
	switch v := value.(type) {
	case int:
		numbers = []float64{float64(v)}
	case float64:
		numbers = []float64{v}
	case []int:
		for _, n := range v {
			numbers = append(numbers, float64(n))
		}
	}
	for _, n := range numbers {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Sprintf("value %v must be finite", n)
		}
		if p.Min != nil && n < *p.Min {
			return fmt.Sprintf("value %v is below minimum %v", n, *p.Min)
		}
		if p.Max != nil && n > *p.Max {
			return fmt.Sprintf("value %v is above maximum %v", n, *p.Max)
		}
	}
	return ""
}

func copyValue(value interface{}) interface{} {
	if list, ok := value.([]int); ok {
		return append([]int{}, list...)
	}
	return value
}
