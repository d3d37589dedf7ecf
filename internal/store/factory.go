package store

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Catalog() CatalogStore {
	return newCatalogStore(s.queries)
}

func (s *Stores) Cohorts() CohortStore {
	return newCohortStore(s.queries)
}

func (s *Stores) ParticipantAssessments() ParticipantAssessmentStore {
	return newParticipantAssessmentStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Responses() ResponseStore {
	return newResponseStore(s.queries)
}

func (s *Stores) Nominations() NominationStore {
	return newNominationStore(s.queries)
}

func (s *Stores) ExternalReviewers() ExternalReviewerStore {
	return newExternalReviewerStore(s.queries)
}
