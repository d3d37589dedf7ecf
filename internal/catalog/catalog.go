package catalog

import (
	"sort"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

// Group is one navigable section of a form. Step is nil for the ungrouped tail.
type Group struct {
	Step      *model.Step
	Questions []model.QuestionDefinition
}

// Catalog is a resolved question set. Questions holds the flat ordering:
// every group's questions concatenated in group order.
type Catalog struct {
	QuestionSet model.QuestionSet
	Questions   []model.QuestionDefinition
	Steps       []model.Step
	Groups      []Group
}

// Build sorts questions and steps and partitions questions into groups.
// Questions whose step is unknown join the ungrouped tail.
func Build(set model.QuestionSet, questions []model.QuestionDefinition, steps []model.Step) *Catalog {
	qs := append([]model.QuestionDefinition(nil), questions...)
	sort.SliceStable(qs, func(i, j int) bool {
		if qs[i].Order != qs[j].Order {
			return qs[i].Order < qs[j].Order
		}
		return qs[i].ID < qs[j].ID
	})

	ss := append([]model.Step(nil), steps...)
	sort.SliceStable(ss, func(i, j int) bool {
		if ss[i].Order != ss[j].Order {
			return ss[i].Order < ss[j].Order
		}
		return ss[i].ID < ss[j].ID
	})

	c := &Catalog{QuestionSet: set, Steps: ss}
	if len(ss) == 0 {
		c.Questions = qs
		c.Groups = []Group{{Questions: qs}}
		return c
	}

	byStep := make(map[int64]int, len(ss))
	c.Groups = make([]Group, len(ss), len(ss)+1)
	for i := range ss {
		byStep[ss[i].ID] = i
		c.Groups[i].Step = &c.Steps[i]
	}

	var tail []model.QuestionDefinition
	for _, q := range qs {
		if q.StepID != nil {
			if i, ok := byStep[*q.StepID]; ok {
				c.Groups[i].Questions = append(c.Groups[i].Questions, q)
				continue
			}
		}
		tail = append(tail, q)
	}
	if len(tail) > 0 {
		c.Groups = append(c.Groups, Group{Questions: tail})
	}

	c.Questions = make([]model.QuestionDefinition, 0, len(qs))
	for _, g := range c.Groups {
		c.Questions = append(c.Questions, g.Questions...)
	}
	return c
}

// HasSteps reports whether the catalog is navigated step by step.
func (c *Catalog) HasSteps() bool {
	return len(c.Steps) > 0
}

func (c *Catalog) Total() int {
	return len(c.Questions)
}

func (c *Catalog) IsEmpty() bool {
	return len(c.Questions) == 0
}

// IndexOf returns the flat index of a question and the index of its group.
func (c *Catalog) IndexOf(questionID int64) (questionIndex, groupIndex int, ok bool) {
	idx := 0
	for gi, g := range c.Groups {
		for _, q := range g.Questions {
			if q.ID == questionID {
				return idx, gi, true
			}
			idx++
		}
	}
	return 0, 0, false
}

// GroupOfStep returns the group index holding the given step.
func (c *Catalog) GroupOfStep(stepID int64) (int, bool) {
	for i, g := range c.Groups {
		if g.Step != nil && g.Step.ID == stepID {
			return i, true
		}
	}
	return 0, false
}

// GroupStart returns the flat index of the first question in a group.
func (c *Catalog) GroupStart(groupIndex int) int {
	start := 0
	for i := 0; i < groupIndex && i < len(c.Groups); i++ {
		start += len(c.Groups[i].Questions)
	}
	return start
}

// IsLastInGroup reports whether the question closes its group.
func (c *Catalog) IsLastInGroup(questionID int64) bool {
	_, gi, ok := c.IndexOf(questionID)
	if !ok {
		return false
	}
	qs := c.Groups[gi].Questions
	return qs[len(qs)-1].ID == questionID
}

// NextStepID returns the step of the first non-empty group after groupIndex.
// The ungrouped tail has no step, so ok is false when it comes next.
func (c *Catalog) NextStepID(groupIndex int) (int64, bool) {
	for i := groupIndex + 1; i < len(c.Groups); i++ {
		if len(c.Groups[i].Questions) == 0 {
			continue
		}
		if c.Groups[i].Step == nil {
			return 0, false
		}
		return c.Groups[i].Step.ID, true
	}
	return 0, false
}

func (c *Catalog) Question(questionID int64) (model.QuestionDefinition, bool) {
	for _, q := range c.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return model.QuestionDefinition{}, false
}
