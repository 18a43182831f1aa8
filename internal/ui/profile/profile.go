// Package profile builds the profile panel: the user's identity and, for
// students, the average score over completed tests.
package profile

import (
	"math"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/ui/locale"
)

// Color is a CSS hex colour.
type Color string

// Score bands.
const (
	ColorLow    Color = "#dc3545"
	ColorMedium Color = "#ff9500"
	ColorHigh   Color = "#28a745"
)

// Avatar backgrounds.
const (
	AvatarTeacher Color = "#DB5C5C"
	AvatarStudent Color = "#64D258"
)

// Aggregate returns the rounded mean percentage over completed tests. ok is
// false when no test is completed.
func Aggregate(tests []domain.TestAssignment) (pct int, ok bool) {
	var (
		sum   float64
		count int
	)
	for _, t := range tests {
		if !t.Completed() {
			continue
		}
		sum += *t.Percentage
		count++
	}
	if count == 0 {
		return 0, false
	}
	// Halves round up, as the web front end does.
	return int(math.Floor(sum/float64(count) + 0.5)), true
}

// Band picks the progress colour for a percentage.
func Band(pct int) Color {
	switch {
	case pct > 60:
		return ColorHigh
	case pct > 30:
		return ColorMedium
	default:
		return ColorLow
	}
}

// Section is the lower part of the panel.
type Section string

const (
	SectionNone    Section = "none"
	SectionStats   Section = "stats"
	SectionNoStats Section = "no_stats"
)

type Stats struct {
	Percent int
	Color   Color
	Label   string
}

// View is the fully resolved content of the panel.
type View struct {
	Initial     string
	AvatarColor Color
	Login       string
	RoleLabel   string
	CloseLabel  string

	Section Section
	Stats   Stats  // set when Section is SectionStats
	Message string // set when Section is SectionNoStats
}

// Build resolves the panel for user. tests is only consulted for students.
func Build(user domain.User, tests []domain.TestAssignment, labels locale.Labels) View {
	v := View{
		Initial:     user.Initial(),
		AvatarColor: AvatarStudent,
		Login:       user.Login,
		RoleLabel:   labels.ProfileRole(user.Role),
		CloseLabel:  labels.Close,
		Section:     SectionNone,
	}
	if user.IsTeacher() {
		v.AvatarColor = AvatarTeacher
	}
	if !user.IsStudent() {
		return v
	}

	if pct, ok := Aggregate(tests); ok {
		v.Section = SectionStats
		v.Stats = Stats{Percent: pct, Color: Band(pct), Label: labels.AveragePercent}
	} else {
		v.Section = SectionNoStats
		v.Message = labels.NoCompletedTests
	}
	return v
}
