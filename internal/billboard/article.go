package billboard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/epilanthanomai/chartsync/internal/chart"
)

// ArticleStrategy reads the current page encoding. The chart name and
// slug come from the page's schema.org Article metadata, the week from
// the chart date picker, and each ranked entry from a repeated result-row
// block with values at fixed item offsets.
type ArticleStrategy struct{}

type schemaOrgArticle struct {
	Type             string `json:"@type"`
	Headline         string `json:"headline"`
	MainEntityOfPage struct {
		ID string `json:"@id"`
	} `json:"mainEntityOfPage"`
}

// Offsets of the values within a result row's item list.
const (
	itemRank     = 0
	itemTitle    = 3
	itemPrevious = 6
	itemPeak     = 7
	itemWeeks    = 8
)

func (ArticleStrategy) Extract(doc *goquery.Document) (chart.Result, error) {
	article, err := findArticleMetadata(doc)
	if err != nil {
		return chart.Result{}, err
	}

	date, ok := doc.Find("#chart-date-picker").Attr("data-date")
	if !ok {
		return chart.Result{}, ErrNoChart
	}

	c := chart.Chart{
		Identity: chart.Identity{
			Slug: slugFromURL(article.MainEntityOfPage.ID),
			Date: date,
		},
		Name: article.Headline,
	}

	var positions []chart.Position
	var rowErr error
	doc.Find(".o-chart-results-list-row-container").EachWithBreak(func(i int, row *goquery.Selection) bool {
		pos, err := positionFromRow(row)
		if err != nil {
			rowErr = fmt.Errorf("chart row %d: %w", i, err)
			return false
		}
		positions = append(positions, pos)
		return true
	})
	if rowErr != nil {
		return chart.Result{}, rowErr
	}

	return chart.Result{Chart: c, Positions: positions}, nil
}

// findArticleMetadata scans the page's ld+json blobs for the first
// schema.org Article object. Blobs that are not valid JSON, or not
// articles, are skipped.
func findArticleMetadata(doc *goquery.Document) (schemaOrgArticle, error) {
	var article schemaOrgArticle
	found := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, node *goquery.Selection) bool {
		var obj schemaOrgArticle
		if err := json.Unmarshal([]byte(node.Text()), &obj); err != nil {
			return true
		}
		if obj.Type != "Article" {
			return true
		}
		article = obj
		found = true
		return false
	})
	if !found {
		return schemaOrgArticle{}, ErrNoChart
	}
	return article, nil
}

// slugFromURL takes the final path segment of the article's canonical
// URL, which for chart pages is the chart slug.
func slugFromURL(u string) string {
	u = strings.TrimRight(u, "/")
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[i+1:]
	}
	return u
}

func positionFromRow(row *goquery.Selection) (chart.Position, error) {
	items := row.Find(".o-chart-results-list-row .o-chart-results-list__item")
	if items.Length() <= itemWeeks {
		return chart.Position{}, fmt.Errorf("expected at least %d row items, found %d", itemWeeks+1, items.Length())
	}

	rankText := text(items.Eq(itemRank).Find("span").First())
	rank, err := strconv.Atoi(rankText)
	if err != nil {
		return chart.Position{}, fmt.Errorf("unparseable rank %q", rankText)
	}

	title := items.Eq(itemTitle)
	return chart.Position{
		Artist: chart.Artist{Name: text(title.Find("span").First())},
		Song:   chart.Song{Title: text(title.Find("h3").First())},
		Rank: chart.Rank{
			Current:      rank,
			Previous:     optionalInt(text(items.Eq(itemPrevious))),
			Peak:         optionalInt(text(items.Eq(itemPeak))),
			WeeksOnChart: optionalInt(text(items.Eq(itemWeeks))),
		},
	}, nil
}
