package router

import (
	"net/http"

	"rollupbridge/internal/adapters/inbound/http/controllers"
)

type Dependencies struct {
	HealthController       *controllers.HealthController
	SwaggerController      *controllers.SwaggerController
	AssetsController       *controllers.AssetsController
	BalancesController     *controllers.BalancesController
	FundsMessageController *controllers.FundsMessageController
	TransfersController    *controllers.TransfersController
	SessionController      *controllers.SessionController
}

func New(deps Dependencies) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.HealthController.GetHealth)
	mux.HandleFunc("GET /swagger", deps.SwaggerController.RedirectToIndex)
	mux.HandleFunc("GET /swagger/openapi.yaml", deps.SwaggerController.GetOpenAPISpec)
	mux.HandleFunc("GET /swagger/", deps.SwaggerController.ServeUI)
	mux.HandleFunc("GET /v1/assets", deps.AssetsController.ListAssets)
	mux.HandleFunc("POST /v1/assets", deps.AssetsController.RegisterAsset)
	mux.HandleFunc("GET /v1/balances", deps.BalancesController.GetBalances)
	mux.HandleFunc("GET /v1/balances/{identity}", deps.BalancesController.GetBalance)
	mux.HandleFunc("POST /v1/balances/refresh", deps.BalancesController.RefreshBalances)
	mux.HandleFunc("GET /v1/funds-message", deps.FundsMessageController.GetFundsMessage)
	mux.HandleFunc("POST /v1/transfers", deps.TransfersController.ExecuteTransfer)
	mux.HandleFunc("POST /v1/lockbox/release", deps.TransfersController.ReleaseLockbox)
	mux.HandleFunc("POST /v1/session/reset", deps.SessionController.ResetSession)

	return mux
}
