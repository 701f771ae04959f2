// Package postag runs part-of-speech tagging and named-entity recognition
// locally with the prose library.
package postag

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// prose does not score entities.
const DefaultSalience float32 = 0.5

// Penn Treebank tags mapped to the universal tags used by remote taggers.
var universalTags = map[string]string{
	"CD":  "NUM",
	"IN":  "ADP",
	"TO":  "PRT",
	"DT":  "DET",
	"CC":  "CONJ",
	"PRP": "PRON",
}

type Token struct {
	Text string
	Tag  string
}

type Entity struct {
	Name     string
	Type     string
	Salience float32
}

// Tagger is safe for concurrent use; every call builds its own document.
type Tagger struct{}

func New() *Tagger {
	return &Tagger{}
}

// Tag returns the tokens of text with universal part-of-speech tags where a
// mapping exists and the Penn tag otherwise.
func (t *Tagger) Tag(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		tag := tok.Tag
		if u, ok := universalTags[tag]; ok {
			tag = u
		}
		out = append(out, Token{Text: tok.Text, Tag: tag})
	}
	return out, nil
}

// Entities returns the named entities prose recognizes in text.
func (t *Tagger) Entities(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to extract entities: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Name: e.Text, Type: e.Label, Salience: DefaultSalience})
	}
	return out, nil
}
