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

type TransfersController struct {
	executeUseCase portsin.ExecuteTransferUseCase
	releaseUseCase portsin.ReleaseLockboxUseCase
	logger         *log.Logger
}

func NewTransfersController(
	executeUseCase portsin.ExecuteTransferUseCase,
	releaseUseCase portsin.ReleaseLockboxUseCase,
	logger *log.Logger,
) *TransfersController {
	return &TransfersController{
		executeUseCase: executeUseCase,
		releaseUseCase: releaseUseCase,
		logger:         logger,
	}
}

type executeTransferPayload struct {
	Direction   string `json:"direction"`
	Asset       string `json:"asset"`
	AmountMinor string `json:"amount_minor"`
}

func (c *TransfersController) ExecuteTransfer(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseExecuteTransferPayload(r.Body)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/transfers method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.executeUseCase.Execute(r.Context(), dto.ExecuteTransferCommand{
		Direction:   payload.Direction,
		Asset:       payload.Asset,
		AmountMinor: payload.AmountMinor,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/transfers method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type releaseLockboxPayload struct {
	Asset string `json:"asset"`
}

func (c *TransfersController) ReleaseLockbox(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseReleaseLockboxPayload(r.Body)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/lockbox/release method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.releaseUseCase.Execute(r.Context(), dto.ReleaseLockboxCommand{Asset: payload.Asset})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/lockbox/release method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func parseExecuteTransferPayload(body io.Reader) (executeTransferPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	decoder.UseNumber()

	payload := executeTransferPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return executeTransferPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return executeTransferPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	payload.Direction = strings.TrimSpace(payload.Direction)
	if payload.Direction == "" {
		return executeTransferPayload{}, apperrors.NewValidation(
			"invalid_request",
			"direction is required",
			map[string]any{"field": "direction"},
		)
	}

	payload.Asset = strings.TrimSpace(payload.Asset)
	if payload.Asset == "" {
		return executeTransferPayload{}, apperrors.NewValidation(
			"invalid_request",
			"asset is required",
			map[string]any{"field": "asset"},
		)
	}

	payload.AmountMinor = strings.TrimSpace(payload.AmountMinor)
	if payload.AmountMinor == "" {
		return executeTransferPayload{}, apperrors.NewValidation(
			"invalid_request",
			"amount_minor is required",
			map[string]any{"field": "amount_minor"},
		)
	}

	return payload, nil
}

func parseReleaseLockboxPayload(body io.Reader) (releaseLockboxPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := releaseLockboxPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return releaseLockboxPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return releaseLockboxPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	payload.Asset = strings.TrimSpace(payload.Asset)
	if payload.Asset == "" {
		return releaseLockboxPayload{}, apperrors.NewValidation(
			"invalid_request",
			"asset is required",
			map[string]any{"field": "asset"},
		)
	}

	return payload, nil
}
