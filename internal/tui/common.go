package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage in the command output
var (
	// ColorGreen for success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for warnings and highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for inline error messages
	ColorRed = lipgloss.Color("196")
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for selected items
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleMeta is for secondary item metadata (page counts, ids)
	StyleMeta = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleError is for validation and load-failure messages
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)

// Progress label treatments. The label switches to the light-on-dark
// style at 25% (progress.LightOnDark); below that the bar is too short
// to sit behind the text, so it stays dark-on-light with no emphasis.
var (
	// StyleLabelLight is the light-on-dark treatment (bold stands in for
	// the web page's text shadow).
	StyleLabelLight = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
			Bold(true)

	// StyleLabelDark is the dark-on-light treatment, no emphasis.
	StyleLabelDark = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3B2F2F", Dark: "#D7AF87"})
)
