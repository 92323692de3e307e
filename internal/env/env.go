// Package env gathers the process environment, locale, and clock inputs
// the details renderer needs (current year for the "show year vs time of
// day" rule, thousands separator, timezone), keeping internal/render free
// of os.Getenv and time.Now calls so it stays pure and testable.
package env

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dylanreedx/exa-go/internal/adapters/users"
)

// Environment is everything the rendering layer reads from the outside
// world, gathered once at startup.
type Environment struct {
	Now      time.Time
	Location *time.Location
	Users    *users.Cache

	thousands *message.Printer
}

func New() *Environment {
	loc := time.Local
	return &Environment{
		Now:       time.Now(),
		Location:  loc,
		Users:     users.New(),
		thousands: message.NewPrinter(localeFromEnv()),
	}
}

func localeFromEnv() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if tag, err := language.Parse(normalizeLocale(v)); err == nil {
				return tag
			}
		}
	}
	return language.AmericanEnglish
}

func normalizeLocale(v string) string {
	// "en_US.UTF-8" -> "en_US"
	for i, r := range v {
		if r == '.' {
			return v[:i]
		}
	}
	return v
}

// ThousandsSeparated formats n with the locale's thousands separator
// (golang.org/x/text/message, not a hand-rolled digit-grouping loop).
func (e *Environment) ThousandsSeparated(n uint64) string {
	if e.thousands == nil {
		return strconv.FormatUint(n, 10)
	}
	return e.thousands.Sprintf("%d", number.Decimal(n))
}

// IsCurrentYear reports whether t falls in the same calendar year as Now,
// the rule the details table uses to decide between a "month day year"
// and a "month day HH:MM" timestamp rendering.
func (e *Environment) IsCurrentYear(t time.Time) bool {
	return t.Year() == e.Now.Year()
}
