package catalog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

var _ = Describe("ParseMetadataOverrides", func() {
	DescribeTable("defensive parsing",
		func(metadata string, expected map[model.AssessmentType]int64) {
			got := catalog.ParseMetadataOverrides(metadata)
			if expected == nil {
				Expect(got).To(BeEmpty())
				return
			}
			Expect(got).To(Equal(expected))
		},
		Entry("empty", "", nil),
		Entry("plain text", "Leadership plan for 2024", nil),
		Entry("embedded object with numbers",
			`Custom forms: {"pulse": 12, "360": 7} agreed with client`,
			map[model.AssessmentType]int64{model.AssessmentTypePulse: 12, model.AssessmentType360: 7}),
		Entry("numeric strings",
			`{"pulse": "15"}`,
			map[model.AssessmentType]int64{model.AssessmentTypePulse: 15}),
		Entry("unknown keys and bad values are dropped",
			`{"pulse": "abc", "survey": 3, "360": 9}`,
			map[model.AssessmentType]int64{model.AssessmentType360: 9}),
		Entry("malformed object", `{"pulse": 12`, nil),
		Entry("skips an unrelated object before the mapping",
			`owner {"name": "ops"} forms {"pulse": 4}`,
			map[model.AssessmentType]int64{model.AssessmentTypePulse: 4}),
		Entry("non-positive ids", `{"pulse": 0, "360": -2}`, nil),
	)
})

var _ = Describe("PlanConfigSchema", func() {
	It("describes the override mapping", func() {
		schema := catalog.PlanConfigSchema()
		Expect(schema).NotTo(BeNil())

		prop, ok := schema.Properties.Get("question_set_overrides")
		Expect(ok).To(BeTrue())
		Expect(prop.PropertyNames).NotTo(BeNil())
		Expect(prop.PropertyNames.Enum).To(ConsistOf("360", "pulse"))
	})
})
