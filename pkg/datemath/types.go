package datemath

// Mention is a date or time phrase found in a text. Start and End are byte
// offsets, End exclusive.
type Mention struct {
	Start int
	End   int
	Text  string
}
