package billboard

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/epilanthanomai/chartsync/internal/chart"
)

// Strategy turns a fetched chart page into the normalized chart schema.
// The site has shipped two different page encodings over time; exactly
// one strategy is active per deployment, chosen from config when the
// client is constructed. There is no auto-detection: a page in the wrong
// encoding surfaces as ErrNoChart. A strategy must never return a
// partially populated result for a page missing its expected container.
type Strategy interface {
	Extract(doc *goquery.Document) (chart.Result, error)
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// optionalInt parses s as an integer, mapping anything non-numeric (the
// site renders "-" for entries with no prior week) to nil.
func optionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
