package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "brightbuddy/internal/platform/errors"
)

// Profile is the child profile a parent maintains. Stored as JSON under childProfile.
type Profile struct {
	Name          string     `json:"name"`
	Age           string     `json:"age"`
	Sex           string     `json:"sex"`
	ThemeColor    string     `json:"themeColor"`
	Birthday      *time.Time `json:"birthday"`
	BirthdayDay   *int       `json:"birthdayDay"`
	BirthdayMonth *int       `json:"birthdayMonth"`
	BirthdayYear  *int       `json:"birthdayYear"`
}

var sexes = []string{"", "Boy", "Girl"}

// SetBirthday keeps the split day/month/year fields in step with Birthday.
func (p *Profile) SetBirthday(t *time.Time) {
	if t == nil {
		p.Birthday, p.BirthdayDay, p.BirthdayMonth, p.BirthdayYear = nil, nil, nil, nil
		return
	}
	day, month, year := t.Day(), int(t.Month()), t.Year()
	b := *t
	p.Birthday, p.BirthdayDay, p.BirthdayMonth, p.BirthdayYear = &b, &day, &month, &year
}

func (p Profile) Validate() error {
	if _, ok := themes[p.ThemeColor]; !ok && p.ThemeColor != "" {
		return fmt.Errorf("%w: unknown theme color %q", apperrors.ErrInvalidInput, p.ThemeColor)
	}
	for _, s := range sexes {
		if p.Sex == s {
			return nil
		}
	}
	return fmt.Errorf("%w: sex must be Boy or Girl", apperrors.ErrInvalidInput)
}

// Normalized trims text fields and fills the neutral theme when none is chosen.
func (p Profile) Normalized() Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.Age = strings.TrimSpace(p.Age)
	if p.ThemeColor == "" {
		p.ThemeColor = ThemeNeutral
	}
	return p
}

func (p Profile) Theme() ChildTheme {
	return ThemeFor(p.ThemeColor)
}
