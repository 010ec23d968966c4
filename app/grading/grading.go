package grading

// Band maps a minimum score (inclusive) to a grade symbol.
type Band struct {
	Min   float64 `json:"min"`
	Grade string  `json:"grade"`
}

// Scale is an ordered list of bands, sorted descending by Min. A scale must
// end with a Min of 0 so every score resolves to a band.
type Scale []Band

// DefaultScale is the Ugandan secondary school grading scale (UNEB).
var DefaultScale = Scale{
	{Min: 90, Grade: "D1"}, // 90-100
	{Min: 85, Grade: "D2"}, // 85-89
	{Min: 80, Grade: "C3"}, // 80-84
	{Min: 75, Grade: "C4"}, // 75-79
	{Min: 70, Grade: "C5"}, // 70-74
	{Min: 65, Grade: "C6"}, // 65-69
	{Min: 60, Grade: "P7"}, // 60-64
	{Min: 55, Grade: "P8"}, // 55-59
	{Min: 0, Grade: "F9"},  // Below 55
}

// Grade returns the symbol of the first band whose minimum the score meets
// or exceeds. Boundary scores resolve to the higher band.
func Grade(score float64, scale Scale) string {
	for _, b := range scale {
		if score >= b.Min {
			return b.Grade
		}
	}
	return "F9"
}

// GradeDefault grades a score against DefaultScale.
func GradeDefault(score float64) string {
	return Grade(score, DefaultScale)
}
