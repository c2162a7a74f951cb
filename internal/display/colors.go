package display

import "github.com/charmbracelet/lipgloss"

// Thresholds define the color bands applied to each table metric.
type Thresholds struct {
	// Total hands: below HandsLow red, up to HandsHigh yellow, above green.
	HandsLow  int
	HandsHigh int
	// Aggression stats (VPIP, PFR, 3Bet, WTSD): below low green, above
	// high red, yellow between.
	AggressionLow  float64
	AggressionHigh float64
	// Showdown win: below low red, above high green, yellow between.
	ShowdownLow  float64
	ShowdownHigh float64
	// Tightness score: below low red, above high green, yellow between.
	TightnessLow  float64
	TightnessHigh float64
}

// DefaultThresholds returns the bands players expect from the classic HUD.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HandsLow:       50,
		HandsHigh:      200,
		AggressionLow:  15,
		AggressionHigh: 30,
		ShowdownLow:    40,
		ShowdownHigh:   60,
		TightnessLow:   30,
		TightnessHigh:  70,
	}
}

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (t Thresholds) handsStyle(hands int) lipgloss.Style {
	switch {
	case hands < t.HandsLow:
		return redStyle
	case hands <= t.HandsHigh:
		return yellowStyle
	default:
		return greenStyle
	}
}

func (t Thresholds) aggressionStyle(value float64) lipgloss.Style {
	switch {
	case value < t.AggressionLow:
		return greenStyle
	case value > t.AggressionHigh:
		return redStyle
	default:
		return yellowStyle
	}
}

func (t Thresholds) showdownStyle(value float64) lipgloss.Style {
	switch {
	case value < t.ShowdownLow:
		return redStyle
	case value > t.ShowdownHigh:
		return greenStyle
	default:
		return yellowStyle
	}
}

func (t Thresholds) tightnessStyle(value float64) lipgloss.Style {
	switch {
	case value < t.TightnessLow:
		return redStyle
	case value > t.TightnessHigh:
		return greenStyle
	default:
		return yellowStyle
	}
}
