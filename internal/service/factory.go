package service

import (
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/catalog"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/nomination"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/queue"
	"github.com/Brendin-DP/IMD-accelerator-sub000/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	producer queue.Producer
	quota    *nomination.QuotaPolicy
}

func NewServices(stores *store.Stores, txRunner TxRunner, producer queue.Producer, quota *nomination.QuotaPolicy) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		producer: producer,
		quota:    quota,
	}
}

func (s *Services) Catalog() *catalog.Resolver {
	return catalog.NewResolver(s.stores.Cohorts(), s.stores.Catalog())
}

func (s *Services) Responses() ResponseService {
	return NewResponseService(
		s.Catalog(),
		s.stores.ParticipantAssessments(),
		s.stores.Sessions(),
		s.stores.Responses(),
		s.stores.Nominations(),
		s.stores.ExternalReviewers(),
		s.txRunner,
		s.producer,
	)
}

func (s *Services) Nominations() NominationService {
	return NewNominationService(
		s.Catalog(),
		s.quota,
		s.stores.ParticipantAssessments(),
		s.stores.Nominations(),
		s.stores.ExternalReviewers(),
		s.txRunner,
		s.producer,
	)
}
