package progress_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/progress"
)

var _ = Describe("Calculate", func() {
	It("returns zero for an empty catalog", func() {
		c := catalog.Build(model.QuestionSet{}, nil, nil)
		Expect(progress.Calculate(c, answers(1))).To(Equal(progress.Progress{}))
	})

	It("counts every question across steps and the ungrouped tail", func() {
		c := twoStepCatalog()
		p := progress.Calculate(c, answers(1, 4))
		Expect(p).To(Equal(progress.Progress{Answered: 2, Total: 5, Percentage: 40}))
	})

	It("counts distinct answered questions only", func() {
		c := flatCatalog(3)
		rs := append(answers(1, 1), model.Response{QuestionID: 2, IsAnswered: false})
		Expect(progress.Calculate(c, rs).Answered).To(Equal(1))
	})

	It("ignores answers to questions outside the catalog", func() {
		c := flatCatalog(2)
		p := progress.Calculate(c, answers(1, 2, 99))
		Expect(p.Answered).To(Equal(2))
		Expect(p.Percentage).To(Equal(100))
	})

	It("rounds to the nearest integer", func() {
		c := flatCatalog(3)
		Expect(progress.Calculate(c, answers(1)).Percentage).To(Equal(33))
		Expect(progress.Calculate(c, answers(1, 2)).Percentage).To(Equal(67))
	})

	It("grows by exactly one per newly answered question", func() {
		c := flatCatalog(7)
		var ids []int64
		for i := int64(1); i <= 7; i++ {
			before := progress.Calculate(c, answers(ids...))
			ids = append(ids, i)
			after := progress.Calculate(c, answers(ids...))

			Expect(after.Answered).To(Equal(before.Answered + 1))
			Expect(after.Percentage).To(Equal(progress.Percentage(len(ids), 7)))
			Expect(after.Percentage).To(BeNumerically(">=", before.Percentage))
		}
	})
})

var _ = Describe("Percentage", func() {
	DescribeTable("rounding",
		func(answered, total, expected int) {
			Expect(progress.Percentage(answered, total)).To(Equal(expected))
		},
		Entry("empty form", 0, 0, 0),
		Entry("nothing answered", 0, 4, 0),
		Entry("half", 1, 2, 50),
		Entry("one of eight rounds half up", 1, 8, 13),
		Entry("all answered", 4, 4, 100),
		Entry("clamped", 5, 4, 100),
	)
})
