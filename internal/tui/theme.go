package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The board must stay readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorTileBorder lipgloss.TerminalColor = ac("240", "250")
	colorTileFg     lipgloss.TerminalColor = ac("235", "252")
	colorTrigger    lipgloss.TerminalColor = ac("27", "39") // blue accent
	colorStatusFg   lipgloss.TerminalColor = ac("235", "252")
	colorStatusBg   lipgloss.TerminalColor = ac("254", "236")
	colorHelpBorder lipgloss.TerminalColor = ac("250", "243")
)

func triggerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorTrigger).
		Bold(true)
}

func tileStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorTileBorder).
		Foreground(colorTileFg).
		Align(lipgloss.Center, lipgloss.Center)
}

func statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorStatusFg).
		Background(colorStatusBg).
		Padding(0, 1)
}

func helpBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorHelpBorder).
		Padding(0, 2)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is
// useful for plain CLI output but can accidentally disable colors in a TUI.
// Here we only honor NO_COLOR and otherwise follow terminal capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector
	// reports, trust the env; color probing under-reports on some
	// terminals.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection, since
// some terminals don't reliably report their background and AdaptiveColor
// then picks the wrong variant.
//
// Priority:
// 1) SOUNDPAD_TUI_THEME=light|dark|auto
// 2) SOUNDPAD_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("SOUNDPAD_TUI_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		case "auto":
			// fall through to heuristics
		default:
			// Unknown value: ignore.
		}
	}

	if v := strings.TrimSpace(os.Getenv("SOUNDPAD_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
}
