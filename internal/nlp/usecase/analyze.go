package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp"
	"maya-nlp/internal/nlp/extract"
	"maya-nlp/internal/nlp/lexicon"
	"maya-nlp/internal/signal"
)

// AnalyzeText extracts task, temporal and duration entities from a command.
// Blank text yields nlp.ErrInvalidInput. Text that is not a command yields an
// empty slice without calling the backend.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) ([]model.EntityInfo, error) {
	start := time.Now()
	entities, err := a.recovered(ctx, text)
	a.metrics.observe(a.name, time.Since(start), entities, err)
	return entities, err
}

// recovered turns a panic inside the pipeline into ErrExtractionFailed.
func (a *Analyzer) recovered(ctx context.Context, text string) (entities []model.EntityInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.l.Errorf(ctx, "usecase.AnalyzeText: recovered backend=%s: %v", a.name, r)
			entities = nil
			err = &nlp.AnalysisError{Kind: nlp.ErrExtractionFailed, Backend: a.name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return a.analyze(ctx, text)
}

func (a *Analyzer) analyze(ctx context.Context, text string) ([]model.EntityInfo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nlp.ErrInvalidInput
	}

	cmd := lexicon.Classify(text)
	if !cmd.IsCommand {
		a.l.Debugf(ctx, "usecase.AnalyzeText: not a command, backend=%s", a.name)
		return []model.EntityInfo{}, nil
	}

	spans, err := a.provider.Spans(ctx, text)
	if err != nil {
		a.l.Warnf(ctx, "usecase.AnalyzeText: provider.Spans backend=%s: %v", a.name, err)
		return nil, &nlp.AnalysisError{Kind: nlp.ErrBackendUnavailable, Backend: a.name, Err: err}
	}

	exprs, err := extract.Expressions(text, spans)
	if err != nil {
		a.l.Errorf(ctx, "usecase.AnalyzeText: extract.Expressions backend=%s: %v", a.name, err)
		return nil, &nlp.AnalysisError{Kind: nlp.ErrExtractionFailed, Backend: a.name, Err: err}
	}
	exprs = extract.Relabel(cmd, extract.MergeRanges(text, exprs))

	task, hasTask := a.task(text, spans)

	var named []signal.NamedEntity
	if a.entities != nil {
		named, err = a.entities.Entities(ctx, text)
		if err != nil {
			a.l.Warnf(ctx, "usecase.AnalyzeText: provider.Entities backend=%s: %v", a.name, err)
			return nil, &nlp.AnalysisError{Kind: nlp.ErrBackendUnavailable, Backend: a.name, Err: err}
		}
	}

	entities := extract.Assembler{
		Command:     cmd,
		Expressions: exprs,
		Task:        task,
		HasTask:     hasTask,
		Named:       named,
	}.Assemble()

	a.l.Debugf(ctx, "usecase.AnalyzeText: backend=%s spans=%d entities=%d", a.name, len(spans), len(entities))
	return entities, nil
}
