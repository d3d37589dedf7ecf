package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/handler"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/http/middleware"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/service"
)

var _ = Describe("NominationHandler", func() {
	var (
		router      *gin.Engine
		svc         *mockNominationService
		participant map[string]string
		external    map[string]string
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockNominationService{}
		h := handler.NewNominationHandler(svc)

		router.GET("/api/v1/schema/plan-config", handler.PlanConfigSchema)

		authed := router.Group("/api/v1")
		authed.Use(middleware.RequireActor())
		{
			authed.POST("/cohort-assessments/:id/nominations", h.Create)
			authed.GET("/participant-assessments/:id/nominations", h.List)
			authed.GET("/participant-assessments/:id/nominations/summary", h.Summary)
			authed.GET("/reviewers/me/nominations", h.Inbox)
			authed.POST("/nominations/:id/accept", h.Accept)
			authed.POST("/nominations/:id/reject", h.Reject)
			authed.DELETE("/nominations/:id", h.Delete)
		}

		participant = map[string]string{middleware.HeaderUserID: "7"}
		external = map[string]string{middleware.HeaderExternalReviewerID: "9"}
	})

	Describe("Create", func() {
		It("returns 201 with created nominations", func() {
			svc.createFn = func(_ context.Context, req service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				Expect(req.CohortAssessmentID).To(Equal(int64(1000)))
				Expect(req.ParticipantID).To(Equal(int64(7)))
				Expect(req.NominatedByID).To(Equal(int64(7)))
				Expect(req.ReviewerIDs).To(Equal([]int64{11, 12}))
				Expect(req.ExternalEmails).To(Equal([]string{"coach@example.com"}))
				return &service.CreateNominationsResult{
					ParticipantAssessmentID: 77,
					Created: []model.ReviewerNomination{
						{ID: 1, ParticipantAssessmentID: 77, Reviewer: model.InternalReviewer(11), NominatedByID: 7, RequestStatus: model.RequestStatusPending},
						{ID: 2, ParticipantAssessmentID: 77, Reviewer: model.InternalReviewer(12), NominatedByID: 7, RequestStatus: model.RequestStatusPending},
						{ID: 3, ParticipantAssessmentID: 77, Reviewer: model.ExternalReviewerRef(90), NominatedByID: 7, RequestStatus: model.RequestStatusPending},
					},
					Quota:     3,
					Remaining: 0,
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids":    []string{"11", "12"},
				"external_emails": []string{"coach@example.com"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decode(w)
			Expect(resp["participant_assessment_id"]).To(Equal("77"))
			Expect(resp["created"]).To(HaveLen(3))
			Expect(resp["remaining"]).To(BeNumerically("==", 0))
			Expect(resp).NotTo(HaveKey("warnings"))
		})

		It("returns 403 when nominating on another participant's assessment", func() {
			called := false
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				called = true
				return &service.CreateNominationsResult{}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"participant_id": "8",
				"reviewer_ids":   []string{"11"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(called).To(BeFalse())
		})

		It("accepts the caller's own participant id", func() {
			svc.createFn = func(_ context.Context, req service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				Expect(req.ParticipantID).To(Equal(int64(7)))
				Expect(req.NominatedByID).To(Equal(int64(7)))
				return &service.CreateNominationsResult{}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"participant_id": "7",
				"reviewer_ids":   []string{"11"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("returns 201 with warnings for a partial batch", func() {
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				return &service.CreateNominationsResult{
					Created:  []model.ReviewerNomination{{ID: 1, Reviewer: model.InternalReviewer(11)}},
					Failures: []service.InviteFailure{{Email: "not-an-email", Reason: "invalid email address"}},
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids":    []string{"11"},
				"external_emails": []string{"not-an-email"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusCreated))
			warnings := decode(w)["warnings"].([]any)
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0]).To(HaveKeyWithValue("email", "not-an-email"))
		})

		It("returns 409 with the remaining count when the quota would be exceeded", func() {
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				return nil, &service.QuotaExceededError{Quota: 3, Active: 2, Requested: 2, Remaining: 1}
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids": []string{"11", "12"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusConflict))
			resp := decode(w)
			Expect(resp["error"]).To(Equal("quota_exceeded"))
			Expect(resp["remaining"]).To(BeNumerically("==", 1))
		})

		It("returns 409 with the skipped reviewers when all are duplicates", func() {
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				return &service.CreateNominationsResult{
					Skipped: []model.ReviewerRef{model.InternalReviewer(11)},
				}, service.ErrAllDuplicates
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids": []string{"11"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusConflict))
			resp := decode(w)
			Expect(resp["error"]).To(Equal("all_duplicates"))
			Expect(resp["result"]).To(HaveKeyWithValue("skipped", HaveLen(1)))
		})

		It("returns 422 when every invite failed", func() {
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				return &service.CreateNominationsResult{
					Failures: []service.InviteFailure{{Email: "x@example.com", Reason: "upstream rejected"}},
				}, service.ErrAllInvitesFailed
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"external_emails": []string{"x@example.com"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("returns 403 when nominations are disabled", func() {
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				return nil, service.ErrNominationsDisabled
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/4000/nominations", map[string]any{
				"reviewer_ids": []string{"11"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decode(w)["error"]).To(Equal("nominations_disabled"))
		})

		It("returns 400 for a malformed reviewer id", func() {
			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids": []string{"eleven"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("does not let external reviewers nominate", func() {
			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids": []string{"11"},
			}, external)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("logs and returns 500 for unexpected failures", func() {
			svc.createFn = func(_ context.Context, _ service.CreateNominationsRequest) (*service.CreateNominationsResult, error) {
				return nil, errors.New("boom")
			}

			w := doJSON(router, http.MethodPost, "/api/v1/cohort-assessments/1000/nominations", map[string]any{
				"reviewer_ids": []string{"11"},
			}, participant)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Accept and Reject", func() {
		It("accepts as the internal reviewer", func() {
			svc.acceptFn = func(_ context.Context, nominationID int64, actor model.ReviewerRef) (*model.ReviewerNomination, error) {
				Expect(nominationID).To(Equal(int64(5)))
				Expect(actor).To(Equal(model.InternalReviewer(7)))
				return &model.ReviewerNomination{ID: 5, Reviewer: actor, RequestStatus: model.RequestStatusAccepted}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/v1/nominations/5/accept", nil, participant)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["request_status"]).To(Equal("accepted"))
		})

		It("rejects as the external reviewer", func() {
			svc.rejectFn = func(_ context.Context, _ int64, actor model.ReviewerRef) (*model.ReviewerNomination, error) {
				Expect(actor).To(Equal(model.ExternalReviewerRef(9)))
				return &model.ReviewerNomination{ID: 5, Reviewer: actor, RequestStatus: model.RequestStatusRejected}, nil
			}

			w := doJSON(router, http.MethodPost, "/api/v1/nominations/5/reject", nil, external)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["reviewer"]).To(HaveKeyWithValue("kind", "external"))
		})

		It("returns 403 for someone other than the nominee", func() {
			svc.acceptFn = func(_ context.Context, _ int64, _ model.ReviewerRef) (*model.ReviewerNomination, error) {
				return nil, service.ErrNotNominatedReviewer
			}

			w := doJSON(router, http.MethodPost, "/api/v1/nominations/5/accept", nil, participant)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 409 once the nomination was answered", func() {
			svc.rejectFn = func(_ context.Context, _ int64, _ model.ReviewerRef) (*model.ReviewerNomination, error) {
				return nil, service.ErrNominationNotPending
			}

			w := doJSON(router, http.MethodPost, "/api/v1/nominations/5/reject", nil, participant)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Delete", func() {
		It("returns 204 for the nominator", func() {
			svc.deleteFn = func(_ context.Context, nominationID, nominatorID int64) error {
				Expect(nominationID).To(Equal(int64(5)))
				Expect(nominatorID).To(Equal(int64(7)))
				return nil
			}

			w := doJSON(router, http.MethodDelete, "/api/v1/nominations/5", nil, participant)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("returns 403 for anyone else", func() {
			svc.deleteFn = func(_ context.Context, _, _ int64) error {
				return service.ErrNotNominator
			}

			w := doJSON(router, http.MethodDelete, "/api/v1/nominations/5", nil, participant)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("List, Summary and Inbox", func() {
		It("lists nominations with external addresses", func() {
			email := "coach@example.com"
			status := model.ReviewStatusCompleted
			svc.listFn = func(_ context.Context, participantAssessmentID int64) ([]model.NominationView, error) {
				Expect(participantAssessmentID).To(Equal(int64(77)))
				return []model.NominationView{{
					ReviewerNomination: model.ReviewerNomination{
						ID:            3,
						Reviewer:      model.ExternalReviewerRef(90),
						RequestStatus: model.RequestStatusAccepted,
						ReviewStatus:  &status,
						CreatedAt:     time.Now(),
					},
					ExternalEmail: &email,
				}}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/v1/participant-assessments/77/nominations", nil, participant)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
			Expect(resp[0]["external_email"]).To(Equal(email))
			Expect(resp[0]["review_status"]).To(Equal("completed"))
		})

		It("returns the summary with quota and remaining", func() {
			svc.summaryFn = func(_ context.Context, _ int64) (*model.NominationSummary, error) {
				return &model.NominationSummary{Active: 2, Pending: 1, Accepted: 1, Quota: 3, Remaining: 1}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/v1/participant-assessments/77/nominations/summary", nil, participant)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["active"]).To(BeNumerically("==", 2))
			Expect(resp["remaining"]).To(BeNumerically("==", 1))
		})

		It("returns 404 for an unknown participant assessment", func() {
			svc.summaryFn = func(_ context.Context, _ int64) (*model.NominationSummary, error) {
				return nil, service.ErrAssessmentNotFound
			}

			w := doJSON(router, http.MethodGet, "/api/v1/participant-assessments/77/nominations/summary", nil, participant)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("lists the caller's inbox", func() {
			svc.listForReviewerFn = func(_ context.Context, userID int64) ([]model.ReviewerNomination, error) {
				Expect(userID).To(Equal(int64(7)))
				return []model.ReviewerNomination{{ID: 5, Reviewer: model.InternalReviewer(7), RequestStatus: model.RequestStatusPending}}, nil
			}

			w := doJSON(router, http.MethodGet, "/api/v1/reviewers/me/nominations", nil, participant)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("PlanConfigSchema", func() {
		It("serves the schema without authentication", func() {
			w := doJSON(router, http.MethodGet, "/api/v1/schema/plan-config", nil, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(HaveKey("properties"))
		})
	})

	It("maps an unresolvable cohort assessment to 404", func() {
		svc.listFn = func(_ context.Context, _ int64) ([]model.NominationView, error) {
			return nil, catalog.ErrCohortAssessmentNotFound
		}

		w := doJSON(router, http.MethodGet, "/api/v1/participant-assessments/77/nominations", nil, participant)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
