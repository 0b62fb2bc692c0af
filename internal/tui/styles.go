package tui

import "github.com/charmbracelet/lipgloss"

// Prompt styles, keyed by what they mark rather than by color.
var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8FBCBB")).Bold(true)
	actionsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EBCB8B")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Action kinds: folding, passive (check/call) and aggressive (bet/raise).
	foldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF616A")).Bold(true)
	passiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A3BE8C")).Bold(true)
	aggressiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D08770")).Bold(true)

	// Red suits are hearts and diamonds.
	redSuitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")).Bold(true)
	blackSuitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ECEFF4")).Bold(true)

	inputPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#88C0D0")).Bold(true)
	inputTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ECEFF4"))
)
