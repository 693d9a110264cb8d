package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	name  lipgloss.Style
	title lipgloss.Style
	geom  lipgloss.Style
}

func newStyles() styles {
	return styles{
		name:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		title: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		geom:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
