// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders run events on the terminal and collects interactive
// input: yes/no confirmations, first-run configuration, and credential
// prompts with hidden password entry. It implements the service Presenter
// and Confirmer ports; the sync core never touches the terminal directly.
package tui

import "github.com/charmbracelet/lipgloss"

// styles bundles every lipgloss style the presenter uses. A no-color
// variant swaps each entry for a plain style so output stays readable when
// piped or when -no-color is set.
type styles struct {
	Title   lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Dim     lipgloss.Style

	BarLow  lipgloss.Style
	BarMid  lipgloss.Style
	BarHigh lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			Title: plain, Warn: plain, Error: plain,
			Success: plain, Dim: plain,
			BarLow: plain, BarMid: plain, BarHigh: plain,
		}
	}

	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		BarLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		BarMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		BarHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// barStyle picks the bar color by completion: under 30% red, under 60%
// yellow, green otherwise.
func (s styles) barStyle(percent float64) lipgloss.Style {
	switch {
	case percent < 30:
		return s.BarLow
	case percent < 60:
		return s.BarMid
	default:
		return s.BarHigh
	}
}
