package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Cast converts a validated scalar to the Go representation of typeName:
//
//	int            -> int
//	float          -> float64
//	bool           -> bool
//	numeric        -> int for whole numerals, float64 otherwise; numbers keep
//	                  their kind, so casting twice changes nothing
//	anything else  -> string
//
// Nil stays nil. Cast never fails; unparsable input yields the zero value.
func Cast(typeName string, value any) any {
	if value == nil {
		return nil
	}

	switch typeName {
	case "int":
		return toInt(value)
	case "float":
		return toFloat(value)
	case "bool":
		return cast.ToBool(value)
	case "numeric":
		switch value.(type) {
		case float32, float64:
			return toFloat(value)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return toInt(value)
		}
		s, ok := text(value)
		if ok && intRegex.MatchString(strings.TrimSpace(s)) {
			return toInt(value)
		}
		return toFloat(value)
	default:
		return cast.ToString(value)
	}
}

// CastAll applies Cast element-wise.
func CastAll(typeName string, values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = Cast(typeName, v)
	}
	return out
}

func toInt(value any) int {
	s, ok := value.(string)
	if !ok {
		return cast.ToInt(value)
	}
	s = strings.TrimSpace(s)
	// Base 10 on purpose: cast would read a leading zero as octal.
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return int(n)
	}
	return int(toFloat(s))
}

func toFloat(value any) float64 {
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	return cast.ToFloat64(value)
}
