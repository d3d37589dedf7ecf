package service_test

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/model"
)

const (
	clientID = 500

	pulseSetID       = 100
	flatSetID        = 200
	customPulseSetID = 300

	pulseCohortAssessmentID    = 1000
	flatCohortAssessmentID     = 2000
	customCohortAssessmentID   = 3000
	disabledCohortAssessmentID = 4000

	customPlanID = 900
)

// seed loads a system pulse set (step 10: questions 101-103, step 20:
// questions 104-105), a system 360 set (questions 201-204) and a customized
// pulse set (step 30: questions 301-302) selected through a plan override.
func seed(db *fakeDB) {
	db.questionSets[pulseSetID] = &model.QuestionSet{ID: pulseSetID, Name: "Pulse", AssessmentType: model.AssessmentTypePulse, IsSystem: true}
	db.steps[pulseSetID] = []model.Step{
		{ID: 10, QuestionSetID: pulseSetID, Order: 1, Title: "Self"},
		{ID: 20, QuestionSetID: pulseSetID, Order: 2, Title: "Team"},
	}
	db.questions[pulseSetID] = []model.QuestionDefinition{
		{ID: 101, QuestionSetID: pulseSetID, Order: 1, StepID: ptr(int64(10)), Type: "text"},
		{ID: 102, QuestionSetID: pulseSetID, Order: 2, StepID: ptr(int64(10)), Type: "text"},
		{ID: 103, QuestionSetID: pulseSetID, Order: 3, StepID: ptr(int64(10)), Type: "text"},
		{ID: 104, QuestionSetID: pulseSetID, Order: 4, StepID: ptr(int64(20)), Type: "text", Required: true},
		{ID: 105, QuestionSetID: pulseSetID, Order: 5, StepID: ptr(int64(20)), Type: "text", Required: true},
	}

	db.questionSets[flatSetID] = &model.QuestionSet{ID: flatSetID, Name: "360", AssessmentType: model.AssessmentType360, IsSystem: true}
	db.questions[flatSetID] = []model.QuestionDefinition{
		{ID: 201, QuestionSetID: flatSetID, Order: 1, Type: "rating"},
		{ID: 202, QuestionSetID: flatSetID, Order: 2, Type: "rating"},
		{ID: 203, QuestionSetID: flatSetID, Order: 3, Type: "rating"},
		{ID: 204, QuestionSetID: flatSetID, Order: 4, Type: "rating"},
	}

	db.questionSets[customPulseSetID] = &model.QuestionSet{ID: customPulseSetID, Name: "Acme pulse", AssessmentType: model.AssessmentTypePulse}
	db.steps[customPulseSetID] = []model.Step{{ID: 30, QuestionSetID: customPulseSetID, Order: 1}}
	db.questions[customPulseSetID] = []model.QuestionDefinition{
		{ID: 301, QuestionSetID: customPulseSetID, Order: 1, StepID: ptr(int64(30)), Type: "text"},
		{ID: 302, QuestionSetID: customPulseSetID, Order: 2, StepID: ptr(int64(30)), Type: "text"},
	}
	db.plans[customPlanID] = &model.Plan{
		ID:                   customPlanID,
		Name:                 "Acme",
		QuestionSetOverrides: map[model.AssessmentType]int64{model.AssessmentTypePulse: customPulseSetID},
	}

	db.cohortAssessments[pulseCohortAssessmentID] = &model.CohortAssessment{
		ID: pulseCohortAssessmentID, ClientID: clientID, AssessmentType: model.AssessmentTypePulse, AllowReviewerNominations: true,
	}
	db.cohortAssessments[flatCohortAssessmentID] = &model.CohortAssessment{
		ID: flatCohortAssessmentID, ClientID: clientID, AssessmentType: model.AssessmentType360, AllowReviewerNominations: true,
	}
	db.cohortAssessments[customCohortAssessmentID] = &model.CohortAssessment{
		ID: customCohortAssessmentID, ClientID: clientID, AssessmentType: model.AssessmentTypePulse, PlanID: ptr(int64(customPlanID)), AllowReviewerNominations: true,
	}
	db.cohortAssessments[disabledCohortAssessmentID] = &model.CohortAssessment{
		ID: disabledCohortAssessmentID, ClientID: clientID, AssessmentType: model.AssessmentType360,
	}
}
