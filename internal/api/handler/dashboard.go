package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/renezit0/goalflow-api/internal/usecases/dashboarding"
	"github.com/renezit0/goalflow-api/pkg/apiErrors"
	"github.com/renezit0/goalflow-api/pkg/log"
	"github.com/renezit0/goalflow-api/pkg/middleware"
	"github.com/renezit0/goalflow-api/pkg/utils"
)

// GetStoreDashboard retorna os 5 cards de métricas da loja para o período
// selecionado. O parâmetro opcional date substitui a data de referência,
// útil para conferir o dashboard de dias anteriores.
func GetStoreDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.L.WithContext(r.Context())

		storeIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		storeID, err := strconv.Atoi(storeIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da loja inválido", nil)
			return
		}

		periodIDStr := r.URL.Query().Get("period_id")
		if periodIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o período (period_id)", nil)
			return
		}

		periodID, err := strconv.Atoi(periodIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)
			return
		}

		// Usuários de loja só podem consultar a própria loja
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}
		if !userClaims.CanAccessStore(storeID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para consultar esta loja", nil)
			return
		}

		var refDate *time.Time
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato yyyy-mm-dd", nil)
				return
			}
			refDate = parsed
		}

		metrics, err := service.GetStoreMetrics(storeID, periodID, refDate)
		if err != nil {
			switch err {
			case dashboarding.ErrStoreNotFound:
				apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)
			case dashboarding.ErrPeriodNotFound:
				apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, "Período não encontrado", nil)
			default:
				logger.WithError(err).WithFields(log.Fields{
					"store_id":  storeID,
					"period_id": periodID,
				}).Error("dashboard: erro ao calcular métricas")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas do dashboard", nil)
			}
			return
		}

		// A formatação em reais acontece aqui, na borda: o motor só produz números
		cards := make([]*domain.MetricCard, 0, len(metrics.Results))
		for _, result := range metrics.Results {
			cards = append(cards, result.ToCard())
		}

		response := &domain.DashboardResponse{
			StoreID:  metrics.Store.ID,
			PeriodID: metrics.Period.ID,
			Date:     metrics.Date.Format(time.DateOnly),
			Metrics:  cards,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
