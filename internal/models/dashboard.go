package models

import "atmodash.openclimate.org/internal/dataset"

// ChartEntry describes one planned chart in a dashboard response.
type ChartEntry struct {
	Kind     string        `json:"kind"`
	Title    string        `json:"title"`
	Story    string        `json:"story"`
	RowCount int           `json:"rowCount"`
	Stats    dataset.Stats `json:"stats"`
	ImageURL string        `json:"imageUrl"`
}

// DashboardData is the payload of the dashboard endpoint: the charts to
// draw plus any informational, warning or error messages for the user.
type DashboardData struct {
	Gas      string       `json:"gas,omitempty"`
	Info     string       `json:"info,omitempty"`
	Error    string       `json:"error,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Charts   []ChartEntry `json:"charts"`
}

// OptionsData lists the selector dropdown contents, placeholder first.
type OptionsData struct {
	Gases  []string `json:"gases"`
	Years  []string `json:"years"`
	Months []string `json:"months"`
}
