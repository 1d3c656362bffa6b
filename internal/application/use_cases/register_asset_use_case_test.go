//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"rollupbridge/internal/application/dto"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

func TestRegisterAssetResolvesMetadataAndSeedsSnapshot(t *testing.T) {
	token := mustIdentity(testTokenAddress)
	assets := newFakeAssetRepository()
	snapshots := newFakeSnapshotRepository()
	metadata := &fakeMetadataGateway{
		metadata: map[valueobjects.AssetIdentity]dto.AssetMetadata{
			token: {Symbol: "USDQ", Decimals: 6, Name: "Quasi Dollar"},
		},
	}

	useCase := NewRegisterAssetUseCase(assets, metadata, snapshots)
	output, appErr := useCase.Execute(context.Background(), dto.RegisterAssetCommand{Identity: testTokenAddress})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if output.Asset.Identity != token.String() {
		t.Fatalf("expected canonical identity, got %s", output.Asset.Identity)
	}
	if output.Asset.Symbol != "USDQ" || output.Asset.Decimals != 6 {
		t.Fatalf("metadata not carried: %+v", output.Asset)
	}
	if output.Asset.Native {
		t.Fatalf("token must not be native")
	}

	if _, found := assets.Get(token); !found {
		t.Fatalf("asset not stored")
	}
	if len(snapshots.Identities()) != 1 {
		t.Fatalf("expected seeded snapshot identity")
	}
	if _, known := snapshots.Current(token); known {
		t.Fatalf("registration must seed unknown, not commit a snapshot")
	}
}

func TestRegisterAssetIsIdempotent(t *testing.T) {
	token := mustIdentity(testTokenAddress)
	assets := newFakeAssetRepository(tokenAsset(token))
	metadata := &fakeMetadataGateway{}

	useCase := NewRegisterAssetUseCase(assets, metadata, newFakeSnapshotRepository())
	output, appErr := useCase.Execute(context.Background(), dto.RegisterAssetCommand{Identity: testTokenAddress})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if output.Asset.Symbol != "TKN" {
		t.Fatalf("expected the stored asset returned, got %+v", output.Asset)
	}
	if metadata.calls != 0 {
		t.Fatalf("expected no metadata lookup for a known asset, got %d", metadata.calls)
	}
}

func TestRegisterAssetUnknownContract(t *testing.T) {
	useCase := NewRegisterAssetUseCase(newFakeAssetRepository(), &fakeMetadataGateway{}, newFakeSnapshotRepository())

	_, appErr := useCase.Execute(context.Background(), dto.RegisterAssetCommand{Identity: testTokenAddress})
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if appErr.Type != apperrors.TypeNotFound || appErr.Code != "unknown_asset" {
		t.Fatalf("expected unknown_asset not_found, got %+v", appErr)
	}
}

func TestRegisterAssetPropagatesGatewayErrors(t *testing.T) {
	metadata := &fakeMetadataGateway{err: apperrors.NewInternal("ledger_bridge_call_failed", "rpc down", nil)}
	useCase := NewRegisterAssetUseCase(newFakeAssetRepository(), metadata, newFakeSnapshotRepository())

	_, appErr := useCase.Execute(context.Background(), dto.RegisterAssetCommand{Identity: testTokenAddress})
	if appErr == nil {
		t.Fatalf("expected error")
	}
	if appErr.Code != "ledger_bridge_call_failed" {
		t.Fatalf("expected gateway error passed through, got %s", appErr.Code)
	}
}
