package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type SessionController struct {
	resetUseCase portsin.ResetSessionUseCase
	logger       *log.Logger
}

func NewSessionController(resetUseCase portsin.ResetSessionUseCase, logger *log.Logger) *SessionController {
	return &SessionController{resetUseCase: resetUseCase, logger: logger}
}

type resetSessionPayload struct {
	WalletAddress    string `json:"wallet_address"`
	RollupEndpointID string `json:"rollup_endpoint_id"`
}

func (c *SessionController) ResetSession(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseResetSessionPayload(r.Body)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/session/reset method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.resetUseCase.Execute(r.Context(), dto.ResetSessionCommand{
		WalletAddress:    payload.WalletAddress,
		RollupEndpointID: payload.RollupEndpointID,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/session/reset method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func parseResetSessionPayload(body io.Reader) (resetSessionPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := resetSessionPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return resetSessionPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return resetSessionPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	payload.WalletAddress = strings.TrimSpace(payload.WalletAddress)
	if payload.WalletAddress == "" {
		return resetSessionPayload{}, apperrors.NewValidation(
			"invalid_request",
			"wallet_address is required",
			map[string]any{"field": "wallet_address"},
		)
	}

	payload.RollupEndpointID = strings.TrimSpace(payload.RollupEndpointID)

	return payload, nil
}
