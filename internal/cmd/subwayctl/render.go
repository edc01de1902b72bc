package subwayctl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
)

const defaultAccent = lipgloss.Color("63")

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	cardStyle  = lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder())
)

// palette maps color families used by line colors such as "bg-red-600"
// to ANSI colors.
var palette = map[string]lipgloss.Color{
	"red":    lipgloss.Color("9"),
	"orange": lipgloss.Color("208"),
	"amber":  lipgloss.Color("214"),
	"yellow": lipgloss.Color("11"),
	"lime":   lipgloss.Color("154"),
	"green":  lipgloss.Color("10"),
	"teal":   lipgloss.Color("37"),
	"cyan":   lipgloss.Color("14"),
	"blue":   lipgloss.Color("12"),
	"indigo": lipgloss.Color("63"),
	"purple": lipgloss.Color("13"),
	"pink":   lipgloss.Color("205"),
	"gray":   lipgloss.Color("8"),
}

// lineColor resolves a line color to a terminal color. Hex values pass
// through; unknown names use the default accent.
func lineColor(color string) lipgloss.Color {
	color = strings.ToLower(strings.TrimSpace(color))
	if strings.HasPrefix(color, "#") {
		return lipgloss.Color(color)
	}
	color = strings.TrimPrefix(color, "bg-")
	if family, _, ok := strings.Cut(color, "-"); ok {
		color = family
	}
	if accent, ok := palette[color]; ok {
		return accent
	}
	return defaultAccent
}

// RenderStation formats one station as a single line.
func RenderStation(station *subwayv1.Station) string {
	return fmt.Sprintf("%s %s", faintStyle.Render(fmt.Sprintf("#%d", station.GetId())), station.GetName())
}

// RenderLine draws a line card: name, stations from up to down terminal, and
// the total distance.
func RenderLine(line *subwayv1.Line) string {
	if line == nil {
		return ""
	}
	accent := lineColor(line.GetColor())
	title := titleStyle.Foreground(accent).Render(fmt.Sprintf("%s #%d", line.GetName(), line.GetId()))

	names := make([]string, 0, len(line.GetStations()))
	for _, station := range line.GetStations() {
		names = append(names, station.GetName())
	}
	path := strings.Join(names, " → ")
	meta := faintStyle.Render(fmt.Sprintf("%d stations, distance %d, color %s", len(names), line.GetTotalDistance(), line.GetColor()))

	return cardStyle.BorderForeground(accent).Render(lipgloss.JoinVertical(lipgloss.Left, title, path, meta))
}
