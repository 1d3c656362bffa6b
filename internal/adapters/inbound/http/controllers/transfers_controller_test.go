//go:build !integration

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

func newTransfersController(executeErr, releaseErr *apperrors.AppError) *TransfersController {
	return NewTransfersController(
		stubExecuteTransferUseCase{err: executeErr},
		stubReleaseLockboxUseCase{err: releaseErr},
		log.New(io.Discard, "", 0),
	)
}

func TestTransfersControllerExecuteTransferOK(t *testing.T) {
	controller := newTransfersController(nil, nil)

	body := bytes.NewBufferString(`{"direction":"to_rollup","asset":"ETH","amount_minor":"1000"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", body)
	rec := httptest.NewRecorder()

	controller.ExecuteTransfer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"direction":"to_rollup"`)) {
		t.Fatalf("expected direction in payload, got %s", rec.Body.String())
	}
}

func TestTransfersControllerExecuteTransferBusy(t *testing.T) {
	controller := newTransfersController(
		apperrors.NewConflict("transfer_in_flight", "another transfer is running", nil),
		nil,
	)

	body := bytes.NewBufferString(`{"direction":"to_base","asset":"ETH","amount_minor":"5"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", body)
	rec := httptest.NewRecorder()

	controller.ExecuteTransfer(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"transfer_in_flight"`)) {
		t.Fatalf("expected conflict code in payload, got %s", rec.Body.String())
	}
}

func TestTransfersControllerExecuteTransferUnknownAsset(t *testing.T) {
	controller := newTransfersController(
		apperrors.NewNotFound("unknown_asset", "asset is not registered", nil),
		nil,
	)

	body := bytes.NewBufferString(`{"direction":"to_rollup","asset":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","amount_minor":"5"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", body)
	rec := httptest.NewRecorder()

	controller.ExecuteTransfer(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestTransfersControllerExecuteTransferInvalidJSON(t *testing.T) {
	controller := newTransfersController(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()

	controller.ExecuteTransfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected valid json: %v", err)
	}
	if _, ok := payload["error"]; !ok {
		t.Fatalf("expected error envelope in response: %v", payload)
	}
}

func TestTransfersControllerExecuteTransferMissingAmount(t *testing.T) {
	controller := newTransfersController(nil, nil)

	body := bytes.NewBufferString(`{"direction":"to_rollup","asset":"ETH"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", body)
	rec := httptest.NewRecorder()

	controller.ExecuteTransfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"amount_minor"`)) {
		t.Fatalf("expected field name in details, got %s", rec.Body.String())
	}
}

func TestTransfersControllerExecuteTransferRejectsUnknownFields(t *testing.T) {
	controller := newTransfersController(nil, nil)

	body := bytes.NewBufferString(`{"direction":"to_rollup","asset":"ETH","amount_minor":"5","speed":"fast"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/transfers", body)
	rec := httptest.NewRecorder()

	controller.ExecuteTransfer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestTransfersControllerReleaseLockboxOK(t *testing.T) {
	controller := newTransfersController(nil, nil)

	body := bytes.NewBufferString(`{"asset":"ETH"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/lockbox/release", body)
	rec := httptest.NewRecorder()

	controller.ReleaseLockbox(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"asset":"ETH"`)) {
		t.Fatalf("expected asset in payload, got %s", rec.Body.String())
	}
}

func TestTransfersControllerReleaseLockboxBusy(t *testing.T) {
	controller := newTransfersController(
		nil,
		apperrors.NewConflict("transfer_in_flight", "another transfer is running", nil),
	)

	body := bytes.NewBufferString(`{"asset":"ETH"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/lockbox/release", body)
	rec := httptest.NewRecorder()

	controller.ReleaseLockbox(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestTransfersControllerReleaseLockboxMissingAsset(t *testing.T) {
	controller := newTransfersController(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/lockbox/release", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	controller.ReleaseLockbox(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

type stubExecuteTransferUseCase struct {
	err *apperrors.AppError
}

func (s stubExecuteTransferUseCase) Execute(_ context.Context, command dto.ExecuteTransferCommand) (dto.ExecuteTransferOutput, *apperrors.AppError) {
	if s.err != nil {
		return dto.ExecuteTransferOutput{}, s.err
	}
	return dto.ExecuteTransferOutput{
		Direction:   command.Direction,
		Asset:       command.Asset,
		AmountMinor: command.AmountMinor,
	}, nil
}

type stubReleaseLockboxUseCase struct {
	err *apperrors.AppError
}

func (s stubReleaseLockboxUseCase) Execute(_ context.Context, command dto.ReleaseLockboxCommand) (dto.ReleaseLockboxOutput, *apperrors.AppError) {
	if s.err != nil {
		return dto.ReleaseLockboxOutput{}, s.err
	}
	return dto.ReleaseLockboxOutput{Asset: command.Asset}, nil
}
