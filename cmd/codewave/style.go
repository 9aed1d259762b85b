package main

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	letterStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

func status(err error) string {
	if err != nil {
		return failStyle.Render("FAIL")
	}
	return okStyle.Render("ok")
}
