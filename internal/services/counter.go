package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vyper/fermybot/internal/config"
)

// CounterKeyPrefix namespaces counter keys in the shared store
const CounterKeyPrefix = "incr:"

// wowThreshold is the last count that gets a plain reply
const wowThreshold = 9

// NormalizeSubject collapses runs of whitespace to single spaces and trims the ends.
// Case and punctuation are left alone.
// Example: "  Foo \t  bar " -> "Foo bar"
func NormalizeSubject(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CounterKey builds the store key for a normalized subject.
// Lower casing uses the full Unicode mapping, so a final "Σ" becomes "ς".
func CounterKey(subject string) string {
	return CounterKeyPrefix + cases.Lower(language.Und).String(subject)
}

// FormatCount renders the reply text for a subject's new count
// Example: ("Foo bar", 10) -> "Foo bar is now 10; wow!"
func FormatCount(subject string, count int64) string {
	text := fmt.Sprintf("%s is now %d", subject, count)
	if count > wowThreshold {
		text += "; wow!"
	}
	return text
}

// IncrementSubject bumps the counter for subject by one and returns the new value.
// The subject must already be normalized and non-empty.
func IncrementSubject(ctx context.Context, subject string, cfg *config.Config) (int64, error) {
	count, err := cfg.Counter.Incr(ctx, CounterKey(subject))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count, nil
}
