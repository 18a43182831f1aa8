// Package textview renders navigation and profile view-models for a terminal.
package textview

import (
	"fmt"
	"io"
	"strings"

	"github.com/testhub/client/internal/ui/nav"
	"github.com/testhub/client/internal/ui/profile"
)

// Nav writes the navigation bar on one line. An anonymous bar writes nothing.
func Nav(w io.Writer, n nav.Nav) error {
	if n.State == nav.StateAnonymous {
		return nil
	}

	parts := make([]string, 0, len(n.Items)+1)
	for _, it := range n.Items {
		switch it.Kind {
		case nav.KindLink:
			parts = append(parts, fmt.Sprintf("%s -> %s", it.Label, it.Target))
		case nav.KindAction:
			parts = append(parts, fmt.Sprintf("[%s -> %s]", it.Label, it.Target))
		case nav.KindLogout:
			parts = append(parts, fmt.Sprintf("[%s]", it.Label))
		}
	}
	if n.Avatar != nil {
		parts = append(parts, fmt.Sprintf("(%s) %s", n.Avatar.Initial, n.Avatar.Title))
	}

	_, err := fmt.Fprintf(w, "%s\n", strings.Join(parts, " | "))
	return err
}

// Modal writes the profile panel. A hidden panel writes nothing.
func Modal(w io.Writer, m profile.Modal) error {
	switch m.State {
	case profile.ModalHidden:
		return nil
	case profile.ModalLoading:
		_, err := fmt.Fprintf(w, "%s\n", m.Message)
		return err
	}

	v := m.View
	var b strings.Builder
	fmt.Fprintf(&b, "(%s) %s  [%s]\n", v.Initial, v.Login, v.CloseLabel)
	fmt.Fprintf(&b, "    %s %s\n", v.RoleLabel, v.AvatarColor)
	switch v.Section {
	case profile.SectionStats:
		fmt.Fprintf(&b, "    %d%% %s %s\n", v.Stats.Percent, bar(v.Stats.Percent), bandName(v.Stats.Color))
		fmt.Fprintf(&b, "    %s\n", v.Stats.Label)
	case profile.SectionNoStats:
		fmt.Fprintf(&b, "    %s\n", v.Message)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

const barWidth = 20

func bar(pct int) string {
	filled := pct * barWidth / 100
	filled = max(0, min(filled, barWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func bandName(c profile.Color) string {
	switch c {
	case profile.ColorLow:
		return "red"
	case profile.ColorMedium:
		return "orange"
	case profile.ColorHigh:
		return "green"
	default:
		return string(c)
	}
}
