package gnlp

// Token is one syntax token. Offset is the byte offset in the request text.
type Token struct {
	Text   string
	Tag    string
	Lemma  string
	Offset int
}

// Entity is a named entity with its document salience.
type Entity struct {
	Name     string
	Type     string
	Salience float32
}
