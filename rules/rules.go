package rules

import (
	"math"
	"regexp"
	"strings"

	persona "github.com/Krustal/persona"
)

// Package-level constructors return persona.Predicate values for use with
// field Check hooks. The engine runs predicates after the structural check,
// so string rules see strings and numeric rules see numbers; every rule still
// answers false for a foreign type so it stays safe under direct use.

// NonEmpty requires a string with at least one non-space character.
func NonEmpty() persona.Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && strings.TrimSpace(s) != ""
	}
}

// MinLen requires a string of at least n bytes.
func MinLen(n int) persona.Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) >= n
	}
}

// MaxLen requires a string of at most n bytes.
func MaxLen(n int) persona.Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) <= n
	}
}

// Match requires a string matching the regular expression. The expression is
// compiled once at construction; an invalid expression panics, which suits
// package-level schema literals.
func Match(expr string) persona.Predicate {
	re := regexp.MustCompile(expr)
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// Min requires a number >= x.
func Min(x float64) persona.Predicate {
	return func(v any) bool {
		f, ok := persona.AsNumber(v)
		return ok && f >= x
	}
}

// Max requires a number <= x.
func Max(x float64) persona.Predicate {
	return func(v any) bool {
		f, ok := persona.AsNumber(v)
		return ok && f <= x
	}
}

// Between requires lo <= number <= hi.
func Between(lo, hi float64) persona.Predicate {
	return func(v any) bool {
		f, ok := persona.AsNumber(v)
		return ok && f >= lo && f <= hi
	}
}

// Integer requires a number with no fractional part.
func Integer() persona.Predicate {
	return func(v any) bool {
		f, ok := persona.AsNumber(v)
		return ok && f == math.Trunc(f)
	}
}

// ---------- Rule combinators ----------

// And succeeds when every rule accepts the value. Nil rules are skipped.
func And(rules ...persona.Predicate) persona.Predicate {
	return func(v any) bool {
		for _, r := range rules {
			if r == nil {
				continue
			}
			if !r(v) {
				return false
			}
		}
		return true
	}
}

// Or succeeds when any rule accepts the value. With no non-nil rules it
// accepts everything, mirroring And over the empty set.
func Or(rules ...persona.Predicate) persona.Predicate {
	return func(v any) bool {
		ran := false
		for _, r := range rules {
			if r == nil {
				continue
			}
			ran = true
			if r(v) {
				return true
			}
		}
		return !ran
	}
}

// Not inverts a rule. A nil rule rejects everything.
func Not(rule persona.Predicate) persona.Predicate {
	return func(v any) bool {
		if rule == nil {
			return false
		}
		return !rule(v)
	}
}
