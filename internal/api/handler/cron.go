package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/renezit0/goalflow-api/internal/scheduler"
	"github.com/renezit0/goalflow-api/pkg/apiErrors"
	"github.com/renezit0/goalflow-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailySnapshotService *scheduler.DailySnapshotService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot:
			if services.DailySnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots não disponível", nil)
				return
			}
			services.DailySnapshotService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{}
		if services.DailySnapshotService != nil {
			status["snapshot"] = services.DailySnapshotService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
