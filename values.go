package persona

// KindOf classifies a runtime value into the literal kind it satisfies.
// Strings map to KindString; every Go numeric type maps to KindNumber.
// Anything else, including nil and bool, is KindInvalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	default:
		return KindInvalid
	}
}

// AsNumber converts any Go numeric value to float64. The second result is
// false for non-numeric values.
func AsNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}
