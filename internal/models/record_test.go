package models

import (
	"errors"
	"testing"
)

func TestOptionalPresent(t *testing.T) {
	cases := []struct {
		value   Optional
		present bool
	}{
		{"https://example.com", true},
		{"", false},
		{"   ", false},
		{Unavailable, false},
		{"  N/A  ", false},
		{"N/A v2", true},
	}

	for _, c := range cases {
		if got := c.value.Present(); got != c.present {
			t.Errorf("Optional(%q).Present() = %v, want %v", c.value, got, c.present)
		}
	}
}

func TestOptionalOr(t *testing.T) {
	if got := Optional("value").Or("fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := Optional("").Or("fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := Optional(Unavailable).Or("fallback"); got != "fallback" {
		t.Errorf("expected fallback for sentinel, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := PackageRecord{Name: "7-Zip", InstallerType: "msi"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	cases := []PackageRecord{
		{InstallerType: "msi"},
		{Name: "7-Zip"},
		{Name: "   ", InstallerType: "msi"},
		{Name: "7-Zip", InstallerType: " "},
	}

	for _, rec := range cases {
		err := rec.Validate()
		if err == nil {
			t.Errorf("record %+v should have been rejected", rec)
			continue
		}
		var genErr *GenError
		if !errors.As(err, &genErr) {
			t.Errorf("expected GenError, got %T", err)
			continue
		}
		if genErr.Kind != ErrValidation {
			t.Errorf("expected Validation error, got %s", genErr.Kind)
		}
	}
}

func TestErrorKindSkippable(t *testing.T) {
	skippable := []ErrorKind{ErrValidation, ErrUnsupportedType, ErrCollision}
	for _, k := range skippable {
		if !k.Skippable() {
			t.Errorf("%s should be skippable", k)
		}
	}

	fatal := []ErrorKind{ErrStructural, ErrFileOp, ErrStartup}
	for _, k := range fatal {
		if k.Skippable() {
			t.Errorf("%s should not be skippable", k)
		}
	}
}
