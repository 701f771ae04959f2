package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"maya-nlp/internal/nlp"
)

const maxTextLength = 4096

// --- Request DTOs ---

type analyzeReq struct {
	Text    string `json:"text"`
	Backend string `json:"backend"`
}

func (r analyzeReq) validate() error {
	if len(r.Text) > maxTextLength {
		return fmt.Errorf("text must be at most %d bytes", maxTextLength)
	}
	return nil
}

func (r analyzeReq) toInput() nlp.AnalyzeInput {
	return nlp.AnalyzeInput{
		Text:    r.Text,
		Backend: strings.ToLower(strings.TrimSpace(r.Backend)),
	}
}

// ---

type ducklingRawReq struct {
	Text string `json:"text"`
}

func (r ducklingRawReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return nlp.ErrInvalidInput
	}
	if len(r.Text) > maxTextLength {
		return fmt.Errorf("text must be at most %d bytes", maxTextLength)
	}
	return nil
}

// --- Response DTOs ---

type entityResp struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Salience float32 `json:"salience"`
}

type analyzeResp struct {
	Entities []entityResp `json:"entities"`
	Backend  string       `json:"backend"`
}

func (h *handler) newAnalyzeResp(o nlp.AnalyzeOutput) analyzeResp {
	entities := make([]entityResp, 0, len(o.Entities))
	for _, e := range o.Entities {
		entities = append(entities, entityResp{
			Name:     e.Name,
			Type:     string(e.Type),
			Salience: e.Salience,
		})
	}
	return analyzeResp{Entities: entities, Backend: o.Backend}
}

type backendsResp struct {
	Backends []string `json:"backends"`
}

func (h *handler) newBackendsResp(names []string) backendsResp {
	return backendsResp{Backends: names}
}

type ducklingRawResp struct {
	Result json.RawMessage `json:"result"`
}
