package handler

import (
	"net/http"

	"github.com/renezit0/goalflow-api/internal/usecases/perioding"
	"github.com/renezit0/goalflow-api/pkg/apiErrors"
	"github.com/renezit0/goalflow-api/pkg/log"
)

// ListPeriods retorna os períodos de meta disponíveis para o seletor do dashboard
func ListPeriods(service perioding.PeriodService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.L.WithContext(r.Context())

		periods, err := service.ListPeriods()
		if err != nil {
			logger.WithError(err).Error("periods: erro ao buscar períodos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar períodos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
