package domain

// Campos que llegan de los scrapers.
const (
	FieldTermMonths = "termMonths"
	FieldTermMin    = "termMin"
	FieldTermMax    = "termMax"
)

// Campos que agrega la normalización.
const (
	FieldTermRangeMin = "term_range_min"
	FieldTermRangeMax = "term_range_max"
	FieldTermLabel    = "term_label"
)

// RateRecord is one lender's offered rate as produced by a scraper. Only the
// term fields are interpreted; everything else is passed through untouched.
type RateRecord map[string]any

type NormalizationInfo struct {
	Original    int  `json:"original"`
	Normalized  int  `json:"normalized"`
	Distance    int  `json:"distance"`
	WasModified bool `json:"wasModified"`
}

type TermRange struct {
	Min   int    `json:"term_range_min"`
	Max   int    `json:"term_range_max"`
	Label string `json:"term_label"`
}

type RejectedRecord struct {
	Index  int        `json:"index"`
	Record RateRecord `json:"record"`
	Reason string     `json:"reason"`
}

type BatchResult struct {
	Normalized []RateRecord     `json:"normalized"`
	Rejected   []RejectedRecord `json:"rejected"`
}
