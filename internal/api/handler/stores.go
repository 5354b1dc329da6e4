package handler

import (
	"net/http"

	"github.com/renezit0/goalflow-api/infrastructure/repository"
	"github.com/renezit0/goalflow-api/pkg/apiErrors"
	"github.com/renezit0/goalflow-api/pkg/log"
)

// ListStores retorna as lojas cadastradas. Usado por admins e supervisores
// para consultar o dashboard de outra loja.
func ListStores(storeRepo repository.StoreRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.L.WithContext(r.Context())

		stores, err := storeRepo.List()
		if err != nil {
			logger.WithError(err).Error("stores: erro ao buscar lojas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logger.WithError(err).Error("stores: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
