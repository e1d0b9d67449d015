package main

import (
	"github.com/charmbracelet/lipgloss"

	"sportloods-backend/pkg/contactclient"
)

var (
	bannerBase = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	successBanner = bannerBase.
			Foreground(lipgloss.Color("#166534")).
			BorderForeground(lipgloss.Color("#BBF7D0"))

	errorBanner = bannerBase.
			Foreground(lipgloss.Color("#991B1B")).
			BorderForeground(lipgloss.Color("#FECACA"))
)

// RenderBanner draws the green or red message box shown above the form.
// Idle and sending states have no banner.
func RenderBanner(s contactclient.State) string {
	switch s.Status {
	case contactclient.StatusSuccess:
		return successBanner.Render(s.Banner)
	case contactclient.StatusError:
		return errorBanner.Render(s.Banner)
	default:
		return ""
	}
}
