package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/mdpp/internal/config"
)

// StyleManager holds the styles used for terminal output
type StyleManager struct {
	Error   lipgloss.Style
	Title   lipgloss.Style
	Dim     lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	errorColor := parseANSIColor(config.GetColorError())
	titleColor := parseANSIColor(config.GetColorTitle())
	dimColor := parseANSIColor(config.GetColorDim())

	s.Error = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Divider = lipgloss.NewStyle().Foreground(dimColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
