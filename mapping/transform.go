package mapping

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pressmark/schemagen/sanitize"
)

// excerptWords is the word limit for the excerpt transform.
const excerptWords = 30

// dateLayouts are tried in order when reparsing a date transform input.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

func validTransform(op string) bool {
	switch op {
	case "uppercase", "lowercase", "trim", "strip_tags", "int", "float", "bool", "date", "excerpt":
		return true
	}
	return false
}

// applyTransform applies a named pure transform. String operations pass
// non-string values through untouched; numeric coercions yield nil when the
// input cannot be coerced.
func applyTransform(op string, v any) any {
	if v == nil {
		return nil
	}
	switch op {
	case "uppercase":
		return stringOp(v, strings.ToUpper)
	case "lowercase":
		return stringOp(v, strings.ToLower)
	case "trim":
		return stringOp(v, strings.TrimSpace)
	case "strip_tags":
		return stringOp(v, func(s string) string {
			return sanitize.CollapseWhitespace(sanitize.StripTags(s))
		})
	case "excerpt":
		return stringOp(v, func(s string) string {
			return sanitize.TrimWords(s, excerptWords)
		})
	case "int":
		return toInt(v)
	case "float":
		return toFloat(v)
	case "bool":
		return toBool(v)
	case "date":
		return toDate(v)
	default:
		return v
	}
}

func stringOp(v any, fn func(string) string) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return fn(s)
}

func toInt(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return int64(f)
		}
	}
	return nil
}

func toFloat(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return nil
}

func toBool(v any) any {
	switch x := v.(type) {
	case bool:
		return x
	case int, int64, float64:
		return stringify(v) != "0"
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off", "":
			return false
		}
	}
	return nil
}

// toDate reparses a value as ISO-8601. Unparseable input yields nil so a
// malformed date is omitted rather than emitted raw.
func toDate(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(time.RFC3339)
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(time.RFC3339)
			}
		}
	}
	return nil
}

// stringify renders a resolved value for concatenation and comparison.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			if s := stringify(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(x, ", ")
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinStrings(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
