package progress_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/progress"
)

var _ = Describe("DeriveStatus", func() {
	session := func(status model.SessionStatus, pct int) *model.ResponseSession {
		return &model.ResponseSession{Status: status, CompletionPercent: pct}
	}

	DescribeTable("derivation",
		func(s *model.ResponseSession, answered int, expected model.AssessmentStatus) {
			Expect(progress.DeriveStatus(s, answered)).To(Equal(expected))
		},
		Entry("no session, nothing answered", nil, 0, model.AssessmentStatusNotStarted),
		Entry("no session but answers exist", nil, 2, model.AssessmentStatusInProgress),
		Entry("completed session", session(model.SessionStatusCompleted, 40), 2, model.AssessmentStatusCompleted),
		Entry("full snapshot", session(model.SessionStatusInProgress, 100), 5, model.AssessmentStatusCompleted),
		Entry("partial snapshot", session(model.SessionStatusInProgress, 40), 0, model.AssessmentStatusInProgress),
		Entry("stale zero snapshot with answers", session(model.SessionStatusInProgress, 0), 1, model.AssessmentStatusInProgress),
		Entry("fresh session", session(model.SessionStatusInProgress, 0), 0, model.AssessmentStatusNotStarted),
	)
})
