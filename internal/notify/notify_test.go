package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/notify"
)

var _ = Describe("Notify", func() {
	var (
		ctx      context.Context
		server   *httptest.Server
		status   int
		received map[string]any
	)

	BeforeEach(func() {
		ctx = context.Background()
		status = http.StatusAccepted
		received = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
			Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())
			w.WriteHeader(status)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Mailer", func() {
		var mailer notify.Mailer

		BeforeEach(func() {
			mailer = notify.NewMailer(config.MailerConfig{
				ServiceURL:    server.URL,
				FromAddress:   "reviews@example.com",
				InviteBaseURL: "https://app.example.com/review?lang=en",
				Timeout:       time.Second,
			}, nil)
		})

		It("posts the invite with a tokenized link", func() {
			err := mailer.SendReviewerInvite(ctx, "jane@example.com", "tok-1", 42, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(received["to"]).To(Equal("jane@example.com"))
			Expect(received["from"]).To(Equal("reviews@example.com"))
			Expect(received["link"]).To(Equal("https://app.example.com/review?lang=en&token=tok-1"))
			Expect(received["external_reviewer_id"]).To(BeNumerically("==", 7))
		})

		It("reports relay failures as upstream errors", func() {
			status = http.StatusBadGateway
			err := mailer.SendReviewerInvite(ctx, "jane@example.com", "tok-1", 42, 7)
			Expect(errors.Is(err, notify.ErrUpstream)).To(BeTrue())
		})

		It("only logs when no relay is configured", func() {
			m := notify.NewMailer(config.MailerConfig{}, nil)
			Expect(m.SendReviewerInvite(ctx, "jane@example.com", "tok-1", 42, 7)).To(Succeed())
			Expect(received).To(BeNil())
		})
	})

	Describe("ReportRegenerator", func() {
		It("posts the assessment and reason", func() {
			r := notify.NewReportRegenerator(config.ReportsConfig{ServiceURL: server.URL, Timeout: time.Second}, nil)
			Expect(r.Regenerate(ctx, 42, "review_completed")).To(Succeed())
			Expect(received["participant_assessment_id"]).To(BeNumerically("==", 42))
			Expect(received["reason"]).To(Equal("review_completed"))
		})

		It("fails on non-2xx responses", func() {
			status = http.StatusInternalServerError
			r := notify.NewReportRegenerator(config.ReportsConfig{ServiceURL: server.URL, Timeout: time.Second}, nil)
			Expect(errors.Is(r.Regenerate(ctx, 42, "assessment_completed"), notify.ErrUpstream)).To(BeTrue())
		})

		It("reports a missing report service so no report is recorded", func() {
			r := notify.NewReportRegenerator(config.ReportsConfig{}, nil)
			Expect(r.Regenerate(ctx, 42, "assessment_completed")).To(MatchError(notify.ErrNotConfigured))
			Expect(received).To(BeNil())
		})
	})
})
