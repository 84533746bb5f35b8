package billboard

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/epilanthanomai/chartsync/internal/chart"
)

// EmbeddedStrategy reads the older page encoding: a single #charts
// container carries the chart identity as data attributes and every
// ranked entry as a JSON array embedded in the data-charts attribute.
//
// Record fields are projected through a fixed allow-list. Artist and song
// fields arrive prefixed ("artist_name", "title_id"); stripping the
// prefix yields the schema field name. History fields (peak_date,
// peak_rank, weeks_at_1) are folded into the rank object. An allow-listed
// field absent from a record projects to a null field, never an omitted
// one.
type EmbeddedStrategy struct{}

type embeddedRecord map[string]any

func (EmbeddedStrategy) Extract(doc *goquery.Document) (chart.Result, error) {
	container := doc.Find("#charts")
	if container.Length() == 0 {
		return chart.Result{}, ErrNoChart
	}

	slug, _ := container.Attr("data-chart-slug")
	if slug == "" {
		// Older revisions exposed only the chart code.
		slug, _ = container.Attr("data-chart-code")
	}
	name, _ := container.Attr("data-chart-name")
	date, _ := container.Attr("data-chart-date")
	if slug == "" || date == "" {
		return chart.Result{}, ErrNoChart
	}

	raw, ok := container.Attr("data-charts")
	if !ok {
		return chart.Result{}, ErrNoChart
	}
	var records []embeddedRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return chart.Result{}, fmt.Errorf("decoding embedded chart data: %w", err)
	}

	c := chart.Chart{
		Identity: chart.Identity{Slug: slug, Date: date},
		Name:     name,
	}

	positions := make([]chart.Position, 0, len(records))
	for i, rec := range records {
		pos, err := positionFromRecord(rec)
		if err != nil {
			return chart.Result{}, fmt.Errorf("chart record %d: %w", i, err)
		}
		positions = append(positions, pos)
	}

	return chart.Result{Chart: c, Positions: positions}, nil
}

func positionFromRecord(rec embeddedRecord) (chart.Position, error) {
	rank := rec.intField("rank")
	if rank == nil || *rank < 1 {
		return chart.Position{}, fmt.Errorf("missing or invalid rank")
	}

	// Some revisions report the all-time peak only through the history
	// field, not peak_position.
	peak := rec.intField("peak_position")
	if peak == nil {
		peak = rec.intField("peak_rank")
	}

	return chart.Position{
		Artist: chart.Artist{
			Name: rec.stringField("artist_name"),
			Slug: rec.optString("artist_slug"),
		},
		Song: chart.Song{
			Title: rec.stringField("title"),
			ID:    rec.optString("title_id"),
		},
		Rank: chart.Rank{
			Current:      *rank,
			Peak:         peak,
			Previous:     rec.intField("last_position"),
			WeeksOnChart: rec.intField("weeks_on_chart"),
			PeakDate:     rec.optString("peak_date"),
			WeeksAtOne:   rec.intField("weeks_at_1"),
		},
	}, nil
}

func (r embeddedRecord) stringField(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r embeddedRecord) optString(key string) *string {
	s, ok := r[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// intField tolerates the two spellings the embedded data has used for
// numbers: bare JSON numbers and numeric strings.
func (r embeddedRecord) intField(key string) *int {
	switch v := r[key].(type) {
	case float64:
		n := int(v)
		return &n
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}
