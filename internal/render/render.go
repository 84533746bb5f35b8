package render

import (
	"fmt"

	"github.com/epilanthanomai/chartsync/internal/chart"
)

// Mode selects how the movement cell is computed. Which one applies
// follows from the active extraction strategy: the article encoding
// exposes previous-week ranks, the embedded encoding exposes peak history
// instead.
type Mode int

const (
	// ModeRankDelta compares the current rank against the previous week.
	ModeRankDelta Mode = iota
	// ModePeakMarker flags entries whose all-time peak is this week.
	ModePeakMarker
)

// DefaultLimit caps how many positions are printed.
const DefaultLimit = 10

const nameWidth = 50

type Renderer struct {
	Limit int
	Mode  Mode
}

func New(mode Mode) Renderer {
	return Renderer{Limit: DefaultLimit, Mode: mode}
}

// Lines renders a header line followed by up to Limit position lines, in
// the order the chart came in.
func (r Renderer) Lines(res chart.Result) []string {
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	lines := []string{headerStyle.Render(fmt.Sprintf("%s for %s", res.Chart.Name, res.Chart.Date))}
	for _, pos := range res.Positions {
		if len(lines) > limit {
			break
		}
		lines = append(lines, r.positionLine(pos, res.Chart.Date))
	}
	return lines
}

func (r Renderer) positionLine(pos chart.Position, chartDate string) string {
	name := fmt.Sprintf("%s - %s", pos.Song.Title, pos.Artist.Name)
	return fmt.Sprintf("%2d %s %-*s", pos.Rank.Current, r.movement(pos, chartDate), nameWidth, name)
}

// movement renders the 4-character movement cell. Styling is applied to
// the already-padded cell so the line widths hold in any color profile.
func (r Renderer) movement(pos chart.Position, chartDate string) string {
	if r.Mode == ModePeakMarker {
		if pos.Rank.PeakDate != nil && *pos.Rank.PeakDate == chartDate {
			return peakStyle.Render("  * ")
		}
		return "    "
	}

	prev := pos.Rank.Previous
	switch {
	case prev == nil:
		return newStyle.Render("   *")
	case pos.Rank.Current < *prev:
		return upStyle.Render("^   ")
	case pos.Rank.Current > *prev:
		return downStyle.Render("  v ")
	default:
		return " -  "
	}
}
