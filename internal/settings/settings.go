package settings

import (
	"fmt"
	"strings"
)

// Theme selects the app color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}

// Weekday codes for FirstDayOfWeek, matching the stored numeric form.
const (
	WeekStartSunday = 0
	WeekStartMonday = 1
)

// Settings is the single global record of display and notification
// preferences. The JSON field names are the persisted contract.
type Settings struct {
	Theme                Theme `json:"theme"`
	FirstDayOfWeek       int   `json:"firstDayOfWeek"`
	NotificationsEnabled bool  `json:"notificationsEnabled"`
}

// Default returns the settings record used when nothing has been saved, and
// the base every stored record is merged onto.
func Default() Settings {
	return Settings{
		Theme:                ThemeAuto,
		FirstDayOfWeek:       WeekStartMonday,
		NotificationsEnabled: true,
	}
}

// Patch carries a partial update: nil fields are left unchanged.
type Patch struct {
	Theme                *Theme
	FirstDayOfWeek       *int
	NotificationsEnabled *bool
}

// Apply shallow-merges p over s and returns the result.
func (s Settings) Apply(p Patch) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.FirstDayOfWeek != nil {
		s.FirstDayOfWeek = *p.FirstDayOfWeek
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	return s
}

// ParseTheme converts user input to a Theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid theme %q (must be light, dark, or auto)", s)
	}
	return t, nil
}

// ParseWeekStart converts user input ("sunday"/"monday" or "0"/"1") to a
// FirstDayOfWeek code.
func ParseWeekStart(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "0":
		return WeekStartSunday, nil
	case "monday", "1":
		return WeekStartMonday, nil
	}
	return 0, fmt.Errorf("invalid week start %q (must be sunday or monday)", s)
}

// WeekStartName returns the display name for a FirstDayOfWeek code.
func WeekStartName(day int) string {
	if day == WeekStartSunday {
		return "sunday"
	}
	return "monday"
}
