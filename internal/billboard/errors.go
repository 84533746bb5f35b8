package billboard

import (
	"errors"
	"fmt"

	"github.com/epilanthanomai/chartsync/internal/chart"
)

// ErrNoChart reports a page that does not encode a chart in the shape the
// active extraction strategy recognizes.
var ErrNoChart = errors.New("page does not contain chart data")

// ErrNoPositions reports an extraction that found the chart but no ranked
// entries. An empty chart is never returned or cached.
var ErrNoPositions = errors.New("chart has no positions")

// StatusError is a non-2xx response from the chart site.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// IdentityError reports a page describing a different chart or week than
// the one requested.
type IdentityError struct {
	Want chart.Identity
	Got  chart.Identity
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("requested chart %s/%s but page describes %s/%s",
		e.Want.Slug, e.Want.Date, e.Got.Slug, e.Got.Date)
}
