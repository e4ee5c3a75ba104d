package domain

import (
	"errors"
	"testing"
	"time"

	apperrors "brightbuddy/internal/platform/errors"
)

func TestValidatePIN(t *testing.T) {
	t.Parallel()
	for _, pin := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		if err := ValidatePIN(pin); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected %q to be rejected, got %v", pin, err)
		}
	}
	if err := ValidatePIN("0420"); err != nil {
		t.Fatalf("expected valid pin: %v", err)
	}
	if !IsLegacyPIN("1234") || IsLegacyPIN("$2a$10$abc") {
		t.Fatalf("legacy detection mismatch")
	}
}

func TestThemeForFallsBackToNeutral(t *testing.T) {
	t.Parallel()
	if ThemeFor("pink").Button != "#EC4899" {
		t.Fatalf("unexpected pink theme")
	}
	if ThemeFor("orange") != ThemeFor(ThemeNeutral) || ThemeFor("") != ThemeFor(ThemeNeutral) {
		t.Fatalf("expected neutral fallback")
	}
	if got := ThemeColors(); len(got) != 6 || got[0] != "blue" {
		t.Fatalf("unexpected theme list %v", got)
	}
}

func TestProfileBirthdayAndValidation(t *testing.T) {
	t.Parallel()
	p := Profile{Name: " Ada ", Sex: "Girl"}.Normalized()
	if p.Name != "Ada" || p.ThemeColor != ThemeNeutral {
		t.Fatalf("unexpected normalized profile %+v", p)
	}
	b := time.Date(2018, time.May, 4, 0, 0, 0, 0, time.UTC)
	p.SetBirthday(&b)
	if *p.BirthdayDay != 4 || *p.BirthdayMonth != 5 || *p.BirthdayYear != 2018 {
		t.Fatalf("unexpected birthday parts %d/%d/%d", *p.BirthdayDay, *p.BirthdayMonth, *p.BirthdayYear)
	}
	p.SetBirthday(nil)
	if p.Birthday != nil || p.BirthdayDay != nil {
		t.Fatalf("expected cleared birthday")
	}
	if err := (Profile{ThemeColor: "orange"}).Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected unknown color rejected, got %v", err)
	}
	if err := (Profile{Sex: "Robot"}).Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected unknown sex rejected, got %v", err)
	}
}
