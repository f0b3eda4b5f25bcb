package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/storage-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawLocationChart shows where the unused stores live, one bar per
// location, busiest locations first.
func DrawLocationChart(accounts []model.StorageAccount) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊 UNUSED STORES BY LOCATION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	counts := map[string]int{}
	for _, account := range accounts {
		location := account.Location
		if location == "" {
			location = "unknown"
		}
		counts[location]++
	}

	locations := make([]string, 0, len(counts))
	for location := range counts {
		locations = append(locations, location)
	}
	sort.Slice(locations, func(i, j int) bool {
		if counts[locations[i]] != counts[locations[j]] {
			return counts[locations[i]] > counts[locations[j]]
		}
		return locations[i] < locations[j]
	})

	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	bc := barchart.New(80, 15)
	for idx, location := range locations {
		color := palette[len(palette)-1]
		if idx < len(palette) {
			color = palette[idx]
		}

		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %d", location, counts[location]),
			Values: []barchart.BarValue{
				{
					Value: float64(counts[location]),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	))
}
