package mapping

import "strconv"

func validOperator(op string) bool {
	switch op {
	case "==", "===", "!=", "!==", ">", "<", "empty", "not_empty":
		return true
	}
	return false
}

// evaluate applies a conditional operator to a resolved field value and a
// literal comparison value. Unknown operators evaluate to false, selecting
// the else branch.
func evaluate(op string, actual, compare any) bool {
	switch op {
	case "==":
		return looseEqual(actual, compare)
	case "===":
		return strictEqual(actual, compare)
	case "!=":
		return !looseEqual(actual, compare)
	case "!==":
		return !strictEqual(actual, compare)
	case ">":
		a, aok := numeric(actual)
		b, bok := numeric(compare)
		return aok && bok && a > b
	case "<":
		a, aok := numeric(actual)
		b, bok := numeric(compare)
		return aok && bok && a < b
	case "empty":
		return IsEmpty(actual)
	case "not_empty":
		return !IsEmpty(actual)
	default:
		return false
	}
}

// looseEqual compares after coercion: numerically when both sides are
// numeric, otherwise by string representation.
func looseEqual(a, b any) bool {
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			return an == bn
		}
	}
	return stringify(a) == stringify(b)
}

// strictEqual requires matching dynamic types as well as values. Integer
// widths are normalized first so config literals compare against meta values
// regardless of how the host deserialized them.
func strictEqual(a, b any) bool {
	a, b = normalizeInt(a), normalizeInt(b)
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return false
	}
}

func normalizeInt(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	}
	return v
}

func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
