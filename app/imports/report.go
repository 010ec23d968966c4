package imports

// RowFailure records one failed dataset row. Row is the spreadsheet line
// number: dataset index + 2, accounting for the header row.
type RowFailure struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Report summarizes a completed batch: a success count and the error list,
// plus a details payload carrying the full created-record list. A batch
// whose every row failed is still a valid report, not a transport error.
type Report struct {
	Successes int          `json:"successes"`
	Errors    []RowFailure `json:"errors"`
	Details   Details      `json:"-"`
}

// Details is the supplementary payload for callers that need the created
// records, not just their count.
type Details struct {
	Successes []any        `json:"successes"`
	Errors    []RowFailure `json:"errors"`
}

// Summarize folds accumulated per-row results into a Report. Both lists are
// never nil so the JSON body always carries arrays.
func Summarize(created []any, failures []RowFailure) *Report {
	if created == nil {
		created = []any{}
	}
	if failures == nil {
		failures = []RowFailure{}
	}
	return &Report{
		Successes: len(created),
		Errors:    failures,
		Details:   Details{Successes: created, Errors: failures},
	}
}
