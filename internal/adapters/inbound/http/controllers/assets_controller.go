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

type AssetsController struct {
	listUseCase     portsin.ListAssetsUseCase
	registerUseCase portsin.RegisterAssetUseCase
	logger          *log.Logger
}

func NewAssetsController(
	listUseCase portsin.ListAssetsUseCase,
	registerUseCase portsin.RegisterAssetUseCase,
	logger *log.Logger,
) *AssetsController {
	return &AssetsController{
		listUseCase:     listUseCase,
		registerUseCase: registerUseCase,
		logger:          logger,
	}
}

func (c *AssetsController) ListAssets(w http.ResponseWriter, r *http.Request) {
	output, appErr := c.listUseCase.Execute(r.Context(), dto.ListAssetsQuery{})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/assets method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

type registerAssetPayload struct {
	Identity string `json:"identity"`
}

func (c *AssetsController) RegisterAsset(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseRegisterAssetPayload(r.Body)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/assets method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.registerUseCase.Execute(r.Context(), dto.RegisterAssetCommand{Identity: payload.Identity})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/assets method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func parseRegisterAssetPayload(body io.Reader) (registerAssetPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := registerAssetPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return registerAssetPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return registerAssetPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	payload.Identity = strings.TrimSpace(payload.Identity)
	if payload.Identity == "" {
		return registerAssetPayload{}, apperrors.NewValidation(
			"invalid_request",
			"identity is required",
			map[string]any{"field": "identity"},
		)
	}

	return payload, nil
}
