package perioding

import (
	"github.com/renezit0/goalflow-api/infrastructure/repository"
	"github.com/renezit0/goalflow-api/internal/domain"
)

// PeriodService expõe os períodos de meta disponíveis para o seletor do
// dashboard.
type PeriodService interface {
	ListPeriods() ([]*domain.Period, error)
	GetActivePeriod() (*domain.Period, error)
}

type Service struct {
	PeriodRepository repository.PeriodRepository
}

func NewService(periodRepository repository.PeriodRepository) PeriodService {
	return &Service{
		PeriodRepository: periodRepository,
	}
}

func (s *Service) ListPeriods() ([]*domain.Period, error) {
	periods, err := s.PeriodRepository.List()
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (s *Service) GetActivePeriod() (*domain.Period, error) {
	period, err := s.PeriodRepository.GetActive()
	if err != nil {
		return nil, err
	}
	return period, nil
}
