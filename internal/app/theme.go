package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	locationStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	groupStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	groupActiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	sectionStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	sectionActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true)
	selectedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	scrollbarTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	scrollbarThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	linkFocusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true)
)
