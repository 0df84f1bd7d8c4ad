// Package validate provides the accumulating check primitives the
// record validators are composed of.
//
// A check yields a nil issue slice on success. Independent checks are
// combined with All, which evaluates every argument and concatenates
// the failures in order. A check that depends on a value unwrapped by a
// previous one is simply guarded by it in plain Go: the presence
// primitives return the unwrapped value alongside the issues.
package validate

import (
	"regexp"
	"time"

	mv "github.com/gomtb/validator"
)

// MustBeDefined succeeds with the dereferenced value iff ptr is non-nil.
// The caller conventionally supplies an error-severity issue.
func MustBeDefined[T any](ptr *T, issue mv.Issue) (T, []mv.Issue) {
	if ptr == nil {
		var zero T
		return zero, []mv.Issue{issue}
	}
	return *ptr, nil
}

// ShouldBeDefined is MustBeDefined for recommended fields; the caller
// conventionally supplies a warning-severity issue.
func ShouldBeDefined[T any](ptr *T, issue mv.Issue) (T, []mv.Issue) {
	return MustBeDefined(ptr, issue)
}

// CouldBeDefined is MustBeDefined for optional fields; the caller
// conventionally supplies an info-severity issue.
func CouldBeDefined[T any](ptr *T, issue mv.Issue) (T, []mv.Issue) {
	return MustBeDefined(ptr, issue)
}

// MustBeUndefined succeeds iff ptr is nil.
func MustBeUndefined[T any](ptr *T, issue mv.Issue) []mv.Issue {
	if ptr != nil {
		return []mv.Issue{issue}
	}
	return nil
}

// MustBeEmpty succeeds iff the collection has no elements.
func MustBeEmpty[T any](coll []T, issue mv.Issue) []mv.Issue {
	if len(coll) > 0 {
		return []mv.Issue{issue}
	}
	return nil
}

// IfEmpty fails iff the collection has no elements.
func IfEmpty[T any](coll []T, issue mv.Issue) []mv.Issue {
	if len(coll) == 0 {
		return []mv.Issue{issue}
	}
	return nil
}

// MustEqual succeeds iff x == y.
func MustEqual[T comparable](x, y T, issue mv.Issue) []mv.Issue {
	if x != y {
		return []mv.Issue{issue}
	}
	return nil
}

// MustBeIn succeeds iff x is a member of set.
func MustBeIn[T comparable](x T, set map[T]struct{}, issue mv.Issue) []mv.Issue {
	if _, ok := set[x]; !ok {
		return []mv.Issue{issue}
	}
	return nil
}

// MustBeInInterval succeeds iff lo <= x <= hi.
func MustBeInInterval(x, lo, hi float64, issue mv.Issue) []mv.Issue {
	if x < lo || x > hi {
		return []mv.Issue{issue}
	}
	return nil
}

// MustBeIntInInterval succeeds iff lo <= x <= hi.
func MustBeIntInInterval(x, lo, hi int, issue mv.Issue) []mv.Issue {
	if x < lo || x > hi {
		return []mv.Issue{issue}
	}
	return nil
}

// MustBeBefore succeeds iff t is strictly before limit.
func MustBeBefore(t, limit time.Time, issue mv.Issue) []mv.Issue {
	if !t.Before(limit) {
		return []mv.Issue{issue}
	}
	return nil
}

// MustBeAfter succeeds iff t is strictly after limit.
func MustBeAfter(t, limit time.Time, issue mv.Issue) []mv.Issue {
	if !t.After(limit) {
		return []mv.Issue{issue}
	}
	return nil
}

// MustMatch succeeds iff s matches re.
func MustMatch(s string, re *regexp.Regexp, issue mv.Issue) []mv.Issue {
	if !re.MatchString(s) {
		return []mv.Issue{issue}
	}
	return nil
}

// IfError turns the failure of a fallible operation, typically a parse,
// into the supplied issue.
func IfError(err error, issue mv.Issue) []mv.Issue {
	if err != nil {
		return []mv.Issue{issue}
	}
	return nil
}

// All evaluates every check result and concatenates the failures,
// preserving left-to-right order. It is the accumulating product: no
// failure suppresses any other.
func All(results ...[]mv.Issue) []mv.Issue {
	var issues []mv.Issue
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues
}

// Each applies fn to every element, accumulating all element issues.
func Each[T any](items []T, fn func(i int, item T) []mv.Issue) []mv.Issue {
	var issues []mv.Issue
	for i, item := range items {
		issues = append(issues, fn(i, item)...)
	}
	return issues
}
