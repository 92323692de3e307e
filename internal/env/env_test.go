package env

import (
	"testing"
	"time"
)

func TestThousandsSeparatedGroupsDigits(t *testing.T) {
	e := New()
	got := e.ThousandsSeparated(1234567)
	if got != "1,234,567" {
		t.Fatalf("want 1,234,567, got %q", got)
	}
}

func TestThousandsSeparatedSmallNumberUngrouped(t *testing.T) {
	e := New()
	if got := e.ThousandsSeparated(42); got != "42" {
		t.Fatalf("want 42, got %q", got)
	}
}

func TestIsCurrentYear(t *testing.T) {
	e := New()
	if !e.IsCurrentYear(e.Now) {
		t.Fatal("expected Now to be in the current year")
	}
	past := e.Now.AddDate(-5, 0, 0)
	if e.IsCurrentYear(past) {
		t.Fatal("expected a timestamp five years back to not be the current year")
	}
}

func TestNormalizeLocaleStripsEncodingSuffix(t *testing.T) {
	if got := normalizeLocale("en_US.UTF-8"); got != "en_US" {
		t.Fatalf("want en_US, got %q", got)
	}
	if got := normalizeLocale("en_US"); got != "en_US" {
		t.Fatalf("want en_US unchanged, got %q", got)
	}
}

func TestNewPopulatesLocationAndUsers(t *testing.T) {
	e := New()
	if e.Location == nil {
		t.Fatal("expected a non-nil Location")
	}
	if e.Users == nil {
		t.Fatal("expected a non-nil Users cache")
	}
	if time.Since(e.Now) < 0 {
		t.Fatal("expected Now to not be in the future")
	}
}
