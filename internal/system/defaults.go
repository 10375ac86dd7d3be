package system

// SystemType discriminates the configuration shape of a System. Every
// recognized type has a default configuration template; anything else falls
// back to an empty template.
type SystemType string

const (
	TypePostgreSQL SystemType = "postgresql"
	TypeMySQL      SystemType = "mysql"
	TypeCSV        SystemType = "csv"
	TypeKafka      SystemType = "kafka"
	TypeAPI        SystemType = "api"
)

// DefaultColorCode is applied when a System has no explicit color.
const DefaultColorCode = "#6366f1"

func defaultTemplate(t SystemType) map[string]interface{} {
	switch t {
	case TypePostgreSQL:
		return map[string]interface{}{
			"host":     "localhost",
			"port":     float64(5432),
			"database": "",
			"username": "",
			"schema":   "public",
			"ssl":      false,
		}
	case TypeMySQL:
		return map[string]interface{}{
			"host":     "localhost",
			"port":     float64(3306),
			"database": "",
			"username": "",
			"ssl":      false,
		}
	case TypeCSV:
		return map[string]interface{}{
			"path":      "",
			"delimiter": ",",
			"encoding":  "utf-8",
			"hasHeader": true,
		}
	case TypeKafka:
		return map[string]interface{}{
			"brokers": "localhost:9092",
			"topic":   "",
			"groupId": "",
		}
	case TypeAPI:
		return map[string]interface{}{
			"baseUrl":        "",
			"authType":       "none",
			"timeoutSeconds": float64(30),
		}
	default:
		return map[string]interface{}{}
	}
}

// MergeConfiguration fills a partial configuration with the defaults for the
// given type. Keys present with a non-nil value in partial win; everything
// else falls back to the template. Stale keys from a previous type are kept
// as-is. Neither input map is mutated, and the merge is idempotent.
func MergeConfiguration(t SystemType, partial map[string]interface{}) map[string]interface{} {
	merged := defaultTemplate(t)
	for k, v := range partial {
		if v == nil {
			continue
		}
		merged[k] = v
	}
	return merged
}
