package progress_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/progress"
)

var _ = Describe("ResolveResume", func() {
	inProgress := func(lastQuestion, lastStep *int64) *model.ResponseSession {
		return &model.ResponseSession{
			ID:             1,
			Status:         model.SessionStatusInProgress,
			LastQuestionID: lastQuestion,
			LastStepID:     lastStep,
		}
	}

	Context("when the session is not in progress", func() {
		It("starts completed sessions from the top", func() {
			s := inProgress(ptr(int64(4)), ptr(int64(20)))
			s.Status = model.SessionStatusCompleted

			pos := progress.ResolveResume(s, twoStepCatalog(), answeredSet(1, 2, 3, 4))
			Expect(pos.QuestionIndex).To(Equal(0))
			Expect(*pos.StepIndex).To(Equal(0))
		})

		It("starts a missing session from the top", func() {
			pos := progress.ResolveResume(nil, flatCatalog(4), nil)
			Expect(pos).To(Equal(progress.Position{QuestionIndex: 0}))
		})
	})

	Context("with a usable last question", func() {
		It("resumes at that question and its step", func() {
			pos := progress.ResolveResume(inProgress(ptr(int64(2)), ptr(int64(10))), twoStepCatalog(), answeredSet(1, 2))
			Expect(pos.QuestionIndex).To(Equal(1))
			Expect(*pos.StepIndex).To(Equal(0))
		})

		It("is deterministic across repeated calls", func() {
			s := inProgress(ptr(int64(3)), nil)
			c := flatCatalog(5)
			first := progress.ResolveResume(s, c, answeredSet())
			for range 5 {
				Expect(progress.ResolveResume(s, c, answeredSet())).To(Equal(first))
			}
			Expect(first.QuestionIndex).To(Equal(2))
			Expect(s.LastQuestionID).To(Equal(ptr(int64(3))))
		})

		It("lands on the first question of the next step after finishing a step", func() {
			// Answered all three questions of step one, then advanced.
			s := inProgress(ptr(int64(3)), ptr(int64(20)))

			pos := progress.ResolveResume(s, twoStepCatalog(), answeredSet(1, 2, 3))
			Expect(pos.QuestionIndex).To(Equal(3))
			Expect(pos.StepIndex).NotTo(BeNil())
			Expect(*pos.StepIndex).To(Equal(1))
		})

		It("does not move backwards when the recorded step is earlier", func() {
			s := inProgress(ptr(int64(5)), ptr(int64(10)))

			pos := progress.ResolveResume(s, twoStepCatalog(), answeredSet())
			Expect(pos.QuestionIndex).To(Equal(4))
			Expect(*pos.StepIndex).To(Equal(1))
		})
	})

	Context("without a usable last question", func() {
		It("resumes at the first unanswered question of a flat form", func() {
			pos := progress.ResolveResume(inProgress(nil, nil), flatCatalog(4), answeredSet(1, 3))
			Expect(pos).To(Equal(progress.Position{QuestionIndex: 1}))
		})

		It("does not restart at zero with two of five answered", func() {
			pos := progress.ResolveResume(inProgress(nil, nil), flatCatalog(5), answeredSet(1, 2))
			Expect(pos.QuestionIndex).To(Equal(2))
		})

		It("ignores a last question that left the catalog", func() {
			pos := progress.ResolveResume(inProgress(ptr(int64(99)), nil), twoStepCatalog(), answeredSet(1, 2, 3))
			Expect(pos.QuestionIndex).To(Equal(3))
			Expect(*pos.StepIndex).To(Equal(1))
		})

		It("lands on the last question when everything is answered", func() {
			pos := progress.ResolveResume(inProgress(nil, nil), twoStepCatalog(), answeredSet(1, 2, 3, 4, 5))
			Expect(pos.QuestionIndex).To(Equal(4))
			Expect(*pos.StepIndex).To(Equal(1))
		})
	})
})

var _ = Describe("Next", func() {
	It("moves to the following question and its step", func() {
		pos := progress.Next(twoStepCatalog(), 3)
		Expect(pos.QuestionIndex).To(Equal(3))
		Expect(*pos.StepIndex).To(Equal(1))
	})

	It("stays on the last question", func() {
		pos := progress.Next(flatCatalog(4), 4)
		Expect(pos).To(Equal(progress.Position{QuestionIndex: 3}))
	})

	It("handles single-question forms", func() {
		pos := progress.Next(flatCatalog(1), 1)
		Expect(pos).To(Equal(progress.Position{QuestionIndex: 0}))
	})
})
