package progress

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

// Position is where a returning respondent lands. StepIndex is set only for
// step-grouped catalogs.
type Position struct {
	StepIndex     *int `json:"stepIndex,omitempty"`
	QuestionIndex int  `json:"questionIndex"`
}

// ResolveResume is pure: the same inputs always give the same position.
func ResolveResume(session *model.ResponseSession, c *catalog.Catalog, answered map[int64]struct{}) Position {
	if session == nil || session.Status != model.SessionStatusInProgress || c.IsEmpty() {
		return position(c, 0, 0)
	}

	if session.LastQuestionID != nil {
		if qi, gi, ok := c.IndexOf(*session.LastQuestionID); ok {
			// Leaving the last question of a step records the step entered next.
			if c.HasSteps() && session.LastStepID != nil {
				if sg, ok := c.GroupOfStep(*session.LastStepID); ok && sg > gi && len(c.Groups[sg].Questions) > 0 {
					return position(c, c.GroupStart(sg), sg)
				}
			}
			return position(c, qi, gi)
		}
	}

	idx := 0
	for gi, g := range c.Groups {
		for _, q := range g.Questions {
			if _, ok := answered[q.ID]; !ok {
				return position(c, idx, gi)
			}
			idx++
		}
	}

	last := c.Total() - 1
	_, gi, _ := c.IndexOf(c.Questions[last].ID)
	return position(c, last, gi)
}

func position(c *catalog.Catalog, questionIndex, groupIndex int) Position {
	p := Position{QuestionIndex: questionIndex}
	if c.HasSteps() {
		p.StepIndex = &groupIndex
	}
	return p
}

// Next is the position after questionID in flat order, or the last position
// when questionID closes the form or is unknown.
func Next(c *catalog.Catalog, questionID int64) Position {
	if c.IsEmpty() {
		return position(c, 0, 0)
	}
	qi, _, ok := c.IndexOf(questionID)
	if !ok || qi+1 >= c.Total() {
		qi = c.Total() - 2
	}
	next := c.Questions[qi+1]
	_, gi, _ := c.IndexOf(next.ID)
	return position(c, qi+1, gi)
}
