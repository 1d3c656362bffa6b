//go:build !integration

package use_cases

import (
	"context"
	"testing"
	"time"

	"rollupbridge/internal/application/dto"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

func TestReleaseLockboxNative(t *testing.T) {
	gate := NewAccountGate()
	assets := newFakeAssetRepository(nativeAsset())
	bridge := newFakeTransferGateway()
	refresh := &fakeRefreshUseCase{done: make(chan struct{})}

	useCase := NewReleaseLockboxUseCase(gate, assets, bridge, refresh, nil)
	output, appErr := useCase.Execute(context.Background(), dto.ReleaseLockboxCommand{Asset: "eth"})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	if output.Asset != "ETH" {
		t.Fatalf("expected normalized identity, got %s", output.Asset)
	}

	steps := bridge.recorded()
	if len(steps) != 1 || steps[0] != "withdraw_lockbox_native" {
		t.Fatalf("unexpected steps: %v", steps)
	}

	select {
	case <-refresh.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a post-release refresh")
	}
}

func TestReleaseLockboxToken(t *testing.T) {
	token := mustIdentity(testTokenAddress)
	gate := NewAccountGate()
	assets := newFakeAssetRepository(tokenAsset(token))
	bridge := newFakeTransferGateway()

	useCase := NewReleaseLockboxUseCase(gate, assets, bridge, nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.ReleaseLockboxCommand{Asset: testTokenAddress})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	steps := bridge.recorded()
	if len(steps) != 1 || steps[0] != "withdraw_lockbox_token" {
		t.Fatalf("unexpected steps: %v", steps)
	}
}

func TestReleaseLockboxFailureWrapsStep(t *testing.T) {
	gate := NewAccountGate()
	assets := newFakeAssetRepository(nativeAsset())
	bridge := newFakeTransferGateway()
	bridge.failStep = "withdraw_lockbox_native"
	bridge.failErr = apperrors.NewInternal("ledger_bridge_call_failed", "lockbox empty", nil)

	useCase := NewReleaseLockboxUseCase(gate, assets, bridge, nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.ReleaseLockboxCommand{Asset: "ETH"})
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if appErr.Code != "transfer_failed" || appErr.Details["step"] != "lockbox_release" {
		t.Fatalf("expected transfer_failed at lockbox_release, got %+v", appErr)
	}
	if gate.InFlight() {
		t.Fatalf("gate still held after failure")
	}
}

func TestReleaseLockboxSharesGateWithTransfers(t *testing.T) {
	gate := NewAccountGate()
	assets := newFakeAssetRepository(nativeAsset())
	bridge := newFakeTransferGateway()
	bridge.block = make(chan struct{})

	transferUseCase := NewExecuteTransferUseCase(gate, assets, newFakeSnapshotRepository(), bridge, nil, nil)
	releaseUseCase := NewReleaseLockboxUseCase(gate, assets, bridge, nil, nil)

	transferDone := make(chan *apperrors.AppError, 1)
	go func() {
		_, appErr := transferUseCase.Execute(context.Background(), dto.ExecuteTransferCommand{
			Direction: "to_rollup", Asset: "ETH", AmountMinor: "1",
		})
		transferDone <- appErr
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !gate.InFlight() {
		if time.Now().After(deadline) {
			t.Fatalf("transfer never acquired the gate")
		}
		time.Sleep(time.Millisecond)
	}

	_, appErr := releaseUseCase.Execute(context.Background(), dto.ReleaseLockboxCommand{Asset: "ETH"})
	if appErr == nil {
		t.Fatalf("expected busy rejection")
	}
	if appErr.Type != apperrors.TypeConflict || appErr.Code != "transfer_in_flight" {
		t.Fatalf("expected transfer_in_flight conflict, got %+v", appErr)
	}

	close(bridge.block)
	if transferErr := <-transferDone; transferErr != nil {
		t.Fatalf("expected transfer to succeed, got %+v", transferErr)
	}
}

func TestReleaseLockboxUnregisteredAsset(t *testing.T) {
	useCase := NewReleaseLockboxUseCase(NewAccountGate(), newFakeAssetRepository(), newFakeTransferGateway(), nil, nil)

	_, appErr := useCase.Execute(context.Background(), dto.ReleaseLockboxCommand{Asset: testTokenAddress})
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if appErr.Code != "unknown_asset" {
		t.Fatalf("expected unknown_asset, got %s", appErr.Code)
	}
}
