package handler

import (
	"net/http"

	"github.com/renezit0/goalflow-api/infrastructure/repository"
	"github.com/renezit0/goalflow-api/internal/api/handler/router"
	"github.com/renezit0/goalflow-api/internal/usecases/authenticating"
	"github.com/renezit0/goalflow-api/internal/usecases/dashboarding"
	"github.com/renezit0/goalflow-api/internal/usecases/perioding"
	"github.com/renezit0/goalflow-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetStoreDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Periods(service perioding.PeriodService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     ListPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Stores(storeRepo repository.StoreRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(storeRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
