package filter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Evaluate reports whether rec satisfies node. It is a pure function over
// an immutable tree and a record; repeated calls with the same inputs give
// the same answer.
//
// A nil node matches every record (no filter means match everything). An
// empty And group matches vacuously; an empty Or group never matches.
//
// Condition evaluation is deliberately permissive - it coerces rather than
// errors, and resolves anything unresolvable to false:
//
//   - If both sides look like YYYY-MM-DD, they compare as calendar dates
//     (epoch milliseconds) under the condition's operator. This fires on
//     string shape alone, not on the field's declared type: a string field
//     holding "2025-03-01" date-compares. Intentional quirk, kept.
//   - contains is a case-insensitive substring test with both sides
//     coerced to string.
//   - = and != compare both sides coerced to string, so "3" equals 3.
//   - >, >=, <, <= parse both sides as numbers; an unparseable operand is
//     NaN, and every relational comparison against NaN is false. There is
//     no error sentinel for a malformed value.
//   - An unknown operator evaluates to false, never panics or errors.
func Evaluate(rec Record, node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case Condition:
		return evalCondition(rec, n)
	case Group:
		return evalGroup(rec, n)
	default:
		return false
	}
}

func evalGroup(rec Record, g Group) bool {
	if g.Combinator == Or {
		for _, child := range g.Children {
			if Evaluate(rec, child) {
				return true
			}
		}
		return false
	}
	// And, and anything else, combines conjunctively; vacuously true when
	// empty.
	for _, child := range g.Children {
		if !Evaluate(rec, child) {
			return false
		}
	}
	return true
}

func evalCondition(rec Record, c Condition) bool {
	field := rec[c.Field]
	lhs := coerceString(field)
	rhs := c.Value

	// Date sniffing by string shape, independent of the declared field
	// type. Shape-matched but uncalendrical values (e.g. 2025-13-40) fall
	// through to the generic paths.
	if c.Operator != OpContains && dateShape.MatchString(lhs) && dateShape.MatchString(rhs) {
		lt, lerr := time.Parse(dateLayout, lhs)
		rt, rerr := time.Parse(dateLayout, rhs)
		if lerr == nil && rerr == nil {
			return compareOrdered(lt.UnixMilli(), rt.UnixMilli(), c.Operator)
		}
	}

	switch c.Operator {
	case OpContains:
		return strings.Contains(strings.ToLower(lhs), strings.ToLower(rhs))
	case OpEqual:
		return lhs == rhs
	case OpNotEqual:
		// Distinct branch doing string inequality, not a negation of the
		// OpEqual result. Keeps both branches' permissive behavior aligned
		// with how the equality pair has always resolved.
		return lhs != rhs
	case OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		return compareOrdered(coerceNumber(field), parseNumber(rhs), c.Operator)
	default:
		return false
	}
}

// compareOrdered applies a relational or equality operator to two ordered
// operands. Relational comparisons against NaN are false, per IEEE
// semantics; the numeric path never routes = or != here.
func compareOrdered[T int64 | float64](a, b T, op Operator) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpNotEqual:
		return a != b
	case OpGreaterThan:
		return a > b
	case OpGreaterEqual:
		return a >= b
	case OpLessThan:
		return a < b
	case OpLessEqual:
		return a <= b
	default:
		return false
	}
}

// coerceString renders a value the way the equality and contains paths see
// it. Null (and a missing field) reads as the empty string.
func coerceString(v Value) string {
	switch v.Kind {
	case KindString:
		return v.S
	case KindNumber:
		return strconv.FormatFloat(v.N, 'f', -1, 64)
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// coerceNumber renders a value the way the relational paths see it.
// Anything that does not parse as a number is NaN.
func coerceNumber(v Value) float64 {
	switch v.Kind {
	case KindNumber:
		return v.N
	case KindString:
		return parseNumber(v.S)
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
