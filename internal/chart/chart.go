package chart

// Identity names a single published chart edition: which chart, and which
// week. Date is whatever string the site uses in its chart URLs, not
// necessarily ISO-8601.
type Identity struct {
	Slug string `json:"slug"`
	Date string `json:"date"`
}

// Key is the cache key for this edition.
func (id Identity) Key() string {
	return id.Slug + "-" + id.Date
}

type Chart struct {
	Identity
	Name string `json:"name"`
}

// Optional fields are pointers throughout the model: nil means the source
// page did not expose the value (a new entry has no previous rank), which
// is not the same thing as zero. None of the fields carry omitempty so a
// serialized position always shows every key, null or not.

type Artist struct {
	Name string  `json:"name"`
	Slug *string `json:"slug"`
}

type Song struct {
	Title string  `json:"title"`
	ID    *string `json:"id"`
}

type Rank struct {
	Current      int     `json:"current"`
	Peak         *int    `json:"peak"`
	Previous     *int    `json:"previous"`
	WeeksOnChart *int    `json:"weeks_on_chart"`
	PeakDate     *string `json:"peak_date"`
	WeeksAtOne   *int    `json:"weeks_at_one"`
}

type Position struct {
	Artist Artist `json:"artist"`
	Song   Song   `json:"song"`
	Rank   Rank   `json:"rank"`
}

// Result is one fetched chart edition with its ranked entries, kept in
// the order the site returned them.
type Result struct {
	Chart     Chart      `json:"chart"`
	Positions []Position `json:"positions"`
}
