package progress

import (
	"math"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

type Progress struct {
	Answered   int `json:"answered"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Calculate counts answered catalog questions. Answers to questions that are
// no longer in the catalog are ignored, so Answered never exceeds Total.
func Calculate(c *catalog.Catalog, responses []model.Response) Progress {
	answered := AnsweredSet(c, responses)
	total := c.Total()
	return Progress{
		Answered:   len(answered),
		Total:      total,
		Percentage: Percentage(len(answered), total),
	}
}

// Percentage is round(100*answered/total), 0 for an empty form, at most 100.
func Percentage(answered, total int) int {
	if total <= 0 || answered <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(answered) / float64(total)))
	if pct > 100 {
		return 100
	}
	return pct
}

// AnsweredSet returns the distinct answered question ids present in the catalog.
func AnsweredSet(c *catalog.Catalog, responses []model.Response) map[int64]struct{} {
	inCatalog := make(map[int64]struct{}, len(c.Questions))
	for _, q := range c.Questions {
		inCatalog[q.ID] = struct{}{}
	}

	answered := make(map[int64]struct{})
	for _, r := range responses {
		if !r.IsAnswered {
			continue
		}
		if _, ok := inCatalog[r.QuestionID]; ok {
			answered[r.QuestionID] = struct{}{}
		}
	}
	return answered
}
