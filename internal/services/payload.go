package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"portfolio_backend/internal/normalize"

	"gorm.io/datatypes"
)

// Lenient payload coercion shared by the entity services. Admin input is
// loosely typed; these helpers sanitize for storage and never fail.

func payloadString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func payloadBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	default:
		return false
	}
}

func payloadInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// payloadStringArray stores the normalized list as a JSON column value.
func payloadStringArray(v any) datatypes.JSON {
	arr := normalize.StringArray(v)
	data, _ := json.Marshal(arr)
	return datatypes.JSON(data)
}

// payloadJSONObject stores the normalized object as a JSON column value.
func payloadJSONObject(v any) datatypes.JSON {
	obj := normalize.JSONObject(v)
	data, _ := json.Marshal(obj)
	return datatypes.JSON(data)
}

func emptyJSONArray() datatypes.JSON {
	return datatypes.JSON("[]")
}

func emptyJSONObject() datatypes.JSON {
	return datatypes.JSON("{}")
}
