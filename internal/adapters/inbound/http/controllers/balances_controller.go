package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type BalancesController struct {
	getUseCase     portsin.GetBalancesUseCase
	refreshUseCase portsin.RefreshBalancesUseCase
	logger         *log.Logger
}

func NewBalancesController(
	getUseCase portsin.GetBalancesUseCase,
	refreshUseCase portsin.RefreshBalancesUseCase,
	logger *log.Logger,
) *BalancesController {
	return &BalancesController{
		getUseCase:     getUseCase,
		refreshUseCase: refreshUseCase,
		logger:         logger,
	}
}

func (c *BalancesController) GetBalances(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.getUseCase.Execute(r.Context(), dto.GetBalancesQuery{})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/balances method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *BalancesController) GetBalance(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")

	output, appErr := c.getUseCase.Execute(r.Context(), dto.GetBalancesQuery{Identity: identity})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/balances/{identity} method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type refreshBalancesPayload struct {
	Identities []string `json:"identities"`
}

func (c *BalancesController) RefreshBalances(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseRefreshBalancesPayload(r.Body)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/balances/refresh method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.refreshUseCase.Execute(r.Context(), dto.RefreshBalancesCommand{Identities: payload.Identities})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/balances/refresh method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func parseRefreshBalancesPayload(body io.Reader) (refreshBalancesPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := refreshBalancesPayload{}
	if err := decoder.Decode(&payload); err != nil {
		if err == io.EOF {
			// An empty body means refresh everything.
			return refreshBalancesPayload{}, nil
		}
		return refreshBalancesPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return refreshBalancesPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	return payload, nil
}
