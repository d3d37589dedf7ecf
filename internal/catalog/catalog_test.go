package catalog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

func questionIDs(qs []model.QuestionDefinition) []int64 {
	ids := make([]int64, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

var _ = Describe("Build", func() {
	set := model.QuestionSet{ID: 1, AssessmentType: model.AssessmentTypePulse}

	Context("without steps", func() {
		It("returns questions sorted by order with ties broken by id", func() {
			c := catalog.Build(set, []model.QuestionDefinition{
				{ID: 30, Order: 2},
				{ID: 20, Order: 1},
				{ID: 10, Order: 2},
			}, nil)

			Expect(c.HasSteps()).To(BeFalse())
			Expect(questionIDs(c.Questions)).To(Equal([]int64{20, 10, 30}))
			Expect(c.Groups).To(HaveLen(1))
			Expect(c.Groups[0].Step).To(BeNil())
		})

		It("treats an empty question list as a resolved empty catalog", func() {
			c := catalog.Build(set, nil, nil)
			Expect(c.IsEmpty()).To(BeTrue())
			Expect(c.Total()).To(Equal(0))
		})
	})

	Context("with steps", func() {
		var c *catalog.Catalog

		BeforeEach(func() {
			c = catalog.Build(set,
				[]model.QuestionDefinition{
					{ID: 1, Order: 1, StepID: ptr(int64(200))},
					{ID: 2, Order: 2, StepID: ptr(int64(100))},
					{ID: 3, Order: 3},
					{ID: 4, Order: 4, StepID: ptr(int64(100))},
					{ID: 5, Order: 5, StepID: ptr(int64(999))},
					{ID: 6, Order: 6, StepID: ptr(int64(200))},
				},
				[]model.Step{
					{ID: 200, Order: 2, Title: "Second"},
					{ID: 100, Order: 1, Title: "First"},
				})
		})

		It("groups questions by step in step order followed by an ungrouped tail", func() {
			Expect(c.HasSteps()).To(BeTrue())
			Expect(c.Groups).To(HaveLen(3))
			Expect(c.Groups[0].Step.ID).To(Equal(int64(100)))
			Expect(questionIDs(c.Groups[0].Questions)).To(Equal([]int64{2, 4}))
			Expect(c.Groups[1].Step.ID).To(Equal(int64(200)))
			Expect(questionIDs(c.Groups[1].Questions)).To(Equal([]int64{1, 6}))
			Expect(c.Groups[2].Step).To(BeNil())
			Expect(questionIDs(c.Groups[2].Questions)).To(Equal([]int64{3, 5}))
		})

		It("flattens groups in order", func() {
			Expect(questionIDs(c.Questions)).To(Equal([]int64{2, 4, 1, 6, 3, 5}))
			Expect(c.Total()).To(Equal(6))
		})

		It("locates questions by flat and group index", func() {
			qi, gi, ok := c.IndexOf(6)
			Expect(ok).To(BeTrue())
			Expect(qi).To(Equal(3))
			Expect(gi).To(Equal(1))

			_, _, ok = c.IndexOf(42)
			Expect(ok).To(BeFalse())
		})

		It("reports group boundaries", func() {
			Expect(c.GroupStart(1)).To(Equal(2))
			Expect(c.GroupStart(2)).To(Equal(4))
			Expect(c.IsLastInGroup(4)).To(BeTrue())
			Expect(c.IsLastInGroup(2)).To(BeFalse())

			gi, ok := c.GroupOfStep(200)
			Expect(ok).To(BeTrue())
			Expect(gi).To(Equal(1))
		})

		It("finds the next step, which the ungrouped tail does not have", func() {
			next, ok := c.NextStepID(0)
			Expect(ok).To(BeTrue())
			Expect(next).To(Equal(int64(200)))

			_, ok = c.NextStepID(1)
			Expect(ok).To(BeFalse())
		})
	})
})
