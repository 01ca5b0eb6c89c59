// Package tui implements the Bubble Tea program that hosts ghost alerts.
package tui

import lipgloss "charm.land/lipgloss/v2"

// Tokyo Night color palette.
var (
	colorBlue       = lipgloss.Color("#7aa2f7") // blue
	colorGray       = lipgloss.Color("#565f89") // comment
	colorBackground = lipgloss.Color("#1a1b26") // background
)

// Banner ASCII art for the header.
const banner = `
 ╔═╗╦ ╦╔═╗╔═╗╔╦╗
 ║ ╦╠═╣║ ║╚═╗ ║
 ╚═╝╩ ╩╚═╝╚═╝ ╩ `

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			PaddingLeft(1).
			PaddingBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1)

	// Help key style.
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue)
)
