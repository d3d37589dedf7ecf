package queue

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

// asStream mimics what go-redis returns: every value comes back as a string.
func asStream(id string, values map[string]any) redis.XMessage {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = fmt.Sprint(v)
	}
	return redis.XMessage{ID: id, Values: out}
}

var _ = Describe("ParseMessage", func() {
	It("round-trips a report regeneration task", func() {
		task := ReportRegenerationTask(42, ReasonReviewCompleted)
		task.TraceID = "abc123"

		msg, err := ParseMessage(asStream("1-0", taskValues(task)))
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1-0"))
		Expect(msg.Task).To(Equal(task))
	})

	It("round-trips a reviewer invite task", func() {
		task := ReviewerInviteTask(42, 7)

		msg, err := ParseMessage(asStream("2-0", taskValues(task)))
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Task.TaskType).To(Equal(TaskTypeReviewerInvite))
		Expect(*msg.Task.ExternalReviewerID).To(Equal(int64(7)))
	})

	It("rejects invites without an external reviewer", func() {
		_, err := ParseMessage(asStream("3-0", map[string]any{
			"task_type":                 "reviewer_invite",
			"participant_assessment_id": "42",
		}))
		Expect(err).To(MatchError(ContainSubstring("external_reviewer_id")))
	})

	It("rejects unknown task types", func() {
		_, err := ParseMessage(asStream("4-0", map[string]any{
			"task_type":                 "reindex",
			"participant_assessment_id": "42",
		}))
		Expect(err).To(MatchError(ContainSubstring("unknown task_type")))
	})

	It("rejects malformed ids", func() {
		_, err := ParseMessage(asStream("5-0", map[string]any{
			"task_type":                 "report_regeneration",
			"participant_assessment_id": "forty-two",
		}))
		Expect(err).To(HaveOccurred())
	})

	It("requires a task type", func() {
		_, err := ParseMessage(redis.XMessage{ID: "6-0", Values: map[string]any{}})
		Expect(err).To(MatchError(ContainSubstring("missing task_type")))
	})
})
