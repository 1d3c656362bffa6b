//go:build !integration

package controllers

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

func TestFundsMessageControllerGetFundsMessage(t *testing.T) {
	controller := NewFundsMessageController(stubFundsMessageUseCase{state: "show_request"}, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/funds-message", nil)
	rec := httptest.NewRecorder()

	controller.GetFundsMessage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"state":"show_request"`)) {
		t.Fatalf("expected state in payload, got %s", rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"transfer_in_flight":false`)) {
		t.Fatalf("expected busy flag in payload, got %s", rec.Body.String())
	}
}

func TestFundsMessageControllerReportsTransferInFlight(t *testing.T) {
	controller := NewFundsMessageController(stubFundsMessageUseCase{state: "show_none", inFlight: true}, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/funds-message", nil)
	rec := httptest.NewRecorder()

	controller.GetFundsMessage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"transfer_in_flight":true`)) {
		t.Fatalf("expected busy flag raised, got %s", rec.Body.String())
	}
}

type stubFundsMessageUseCase struct {
	state    string
	inFlight bool
}

func (s stubFundsMessageUseCase) Execute(_ context.Context, _ dto.GetFundsMessageQuery) (dto.FundsMessageOutput, *apperrors.AppError) {
	return dto.FundsMessageOutput{
		State:            s.state,
		SessionID:        "c1f9a2f0-0000-4000-8000-000000000000",
		TransferInFlight: s.inFlight,
	}, nil
}
