package main

import "github.com/charmbracelet/lipgloss"

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

type color = string

var faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(false)

func colorize(c color, s string) string {
	return c + s + colorReset
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func stars(rating int) string {
	s := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}
