package extract

import (
	"strings"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp/lexicon"
	"maya-nlp/internal/signal"
)

const nerTypeNumber = "NUMBER"

// OrderedSet keeps entities in insertion order and ignores re-insertions.
type OrderedSet struct {
	items []model.EntityInfo
	seen  map[model.EntityInfo]struct{}
}

// NewOrderedSet returns an empty set.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[model.EntityInfo]struct{})}
}

// Add inserts e unless an equal entity is already present.
func (s *OrderedSet) Add(e model.EntityInfo) bool {
	if _, ok := s.seen[e]; ok {
		return false
	}
	s.seen[e] = struct{}{}
	s.items = append(s.items, e)
	return true
}

// Items returns a copy of the entities, never nil.
func (s *OrderedSet) Items() []model.EntityInfo {
	out := make([]model.EntityInfo, len(s.items))
	copy(out, s.items)
	return out
}

// Assembler reconciles the findings for one command into the final list.
type Assembler struct {
	Command     model.Command
	Expressions []Expression
	Task        string
	HasTask     bool
	Named       []signal.NamedEntity
}

// Assemble emits temporal and duration entities first, then the task. For
// timer commands the durations follow the task instead. Named entities come
// last, minus numbers, command words and fragments of the task.
func (a Assembler) Assemble() []model.EntityInfo {
	set := NewOrderedSet()
	if !a.Command.IsCommand {
		return set.Items()
	}

	var held []Expression
	for _, e := range a.Expressions {
		if a.Command.IsTimer && e.Type == model.EntityDuration {
			held = append(held, e)
			continue
		}
		set.Add(model.EntityInfo{Name: e.Text, Type: e.Type, Salience: model.SalienceTemporal})
	}

	task := strings.TrimSpace(a.Task)
	hasTask := a.HasTask && task != ""
	if hasTask {
		set.Add(model.EntityInfo{Name: task, Type: model.EntityTask, Salience: a.taskSalience(task)})
	}
	for _, e := range held {
		set.Add(model.EntityInfo{Name: e.Text, Type: e.Type, Salience: model.SalienceTemporal})
	}

	for _, n := range a.Named {
		name := strings.TrimSpace(n.Name)
		switch {
		case name == "":
		case strings.EqualFold(n.Type, nerTypeNumber):
		case lexicon.IsCommandWord(name):
		case hasTask && overlaps(name, task):
		default:
			set.Add(model.EntityInfo{Name: name, Type: model.EntityType(n.Type), Salience: n.Salience})
		}
	}

	return set.Items()
}

// taskSalience is the highest salience among named entities overlapping the
// task, or the task default when none do.
func (a Assembler) taskSalience(task string) float32 {
	best, found := float32(0), false
	for _, n := range a.Named {
		if strings.EqualFold(n.Type, nerTypeNumber) || strings.TrimSpace(n.Name) == "" {
			continue
		}
		if overlaps(n.Name, task) && (!found || n.Salience > best) {
			best, found = n.Salience, true
		}
	}
	if !found {
		return model.SalienceTask
	}
	return best
}

func overlaps(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
