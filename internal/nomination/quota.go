package nomination

import (
	"errors"
	"fmt"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrInvalidQuota = errors.New("quota rule produced an invalid quota")

// QuotaEnv is the input a quota rule is evaluated against.
type QuotaEnv struct {
	AssessmentType string `expr:"assessment_type"`
	Customized     bool   `expr:"customized"`
	StepGrouped    bool   `expr:"step_grouped"`
}

// QuotaPolicy decides how many active nominations a participant assessment
// may hold. An explicit reviewer quota on the question set wins over the rule.
type QuotaPolicy struct {
	program *vm.Program
	rule    string
}

func NewQuotaPolicy(rule string) (*QuotaPolicy, error) {
	program, err := expr.Compile(rule, expr.Env(QuotaEnv{}), expr.AsInt())
	if err != nil {
		return nil, fmt.Errorf("compiling quota rule %q: %w", rule, err)
	}
	return &QuotaPolicy{program: program, rule: rule}, nil
}

func (p *QuotaPolicy) Rule() string {
	return p.rule
}

func (p *QuotaPolicy) Quota(set *model.QuestionSet) (int, error) {
	if set.ReviewerQuota != nil {
		if *set.ReviewerQuota < 0 {
			return 0, fmt.Errorf("%w: %d on question set %d", ErrInvalidQuota, *set.ReviewerQuota, set.ID)
		}
		return *set.ReviewerQuota, nil
	}

	output, err := expr.Run(p.program, QuotaEnv{
		AssessmentType: string(set.AssessmentType),
		Customized:     !set.IsSystem,
		StepGrouped:    set.AssessmentType.IsStepGrouped(),
	})
	if err != nil {
		return 0, fmt.Errorf("evaluating quota rule: %w", err)
	}

	quota, ok := output.(int)
	if !ok || quota < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuota, output)
	}
	return quota, nil
}
