package use_cases

import (
	"context"
	"log"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type releaseLockboxUseCase struct {
	gate    *AccountGate
	assets  portsout.AssetRepository
	bridge  portsout.LedgerTransferGateway
	refresh portsin.RefreshBalancesUseCase
	logger  *log.Logger
}

func NewReleaseLockboxUseCase(
	gate *AccountGate,
	assets portsout.AssetRepository,
	bridge portsout.LedgerTransferGateway,
	refresh portsin.RefreshBalancesUseCase,
	logger *log.Logger,
) portsin.ReleaseLockboxUseCase {
	return &releaseLockboxUseCase{
		gate:    gate,
		assets:  assets,
		bridge:  bridge,
		refresh: refresh,
		logger:  logger,
	}
}

// Execute releases the caller's lockbox balance for one asset. It shares the
// account gate with transfer execution: both submit ledger transactions from
// the same account, so only one of the two may be in flight.
func (u *releaseLockboxUseCase) Execute(
	ctx context.Context,
	command dto.ReleaseLockboxCommand,
) (dto.ReleaseLockboxOutput, *apperrors.AppError) {
	if u.gate == nil || u.assets == nil {
		return dto.ReleaseLockboxOutput{}, apperrors.NewInternal(
			"lockbox_dependencies_missing",
			"account gate and asset repository are required",
			nil,
		)
	}
	if u.bridge == nil {
		return dto.ReleaseLockboxOutput{}, apperrors.NewInternal(
			"ledger_transfer_gateway_missing",
			"ledger transfer gateway is required",
			nil,
		)
	}

	identity, identityErr := valueobjects.NormalizeAssetIdentity(command.Asset)
	if identityErr != nil {
		return dto.ReleaseLockboxOutput{}, identityErr
	}
	if _, registered := u.assets.Get(identity); !registered {
		return dto.ReleaseLockboxOutput{}, apperrors.NewNotFound(
			"unknown_asset",
			"asset must be registered before releasing its lockbox",
			map[string]any{"identity": identity.String()},
		)
	}

	if !u.gate.TryAcquire() {
		return dto.ReleaseLockboxOutput{}, busyError()
	}
	defer u.gate.Release()

	var releaseErr *apperrors.AppError
	if identity.IsNative() {
		releaseErr = u.bridge.WithdrawLockboxNative(ctx)
	} else {
		releaseErr = u.bridge.WithdrawLockboxToken(ctx, identity)
	}
	if releaseErr != nil {
		return dto.ReleaseLockboxOutput{}, transferFailed(transferStepLockbox, releaseErr)
	}

	u.refreshAfterRelease(ctx, identity)

	return dto.ReleaseLockboxOutput{Asset: identity.String()}, nil
}

func (u *releaseLockboxUseCase) refreshAfterRelease(ctx context.Context, identity valueobjects.AssetIdentity) {
	if u.refresh == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		output, refreshErr := u.refresh.Execute(detached, dto.RefreshBalancesCommand{
			Identities: []string{identity.String()},
		})
		if u.logger == nil {
			return
		}
		if refreshErr != nil {
			u.logger.Printf("post-release refresh failed identity=%s code=%s message=%s", identity, refreshErr.Code, refreshErr.Message)
			return
		}
		for _, failure := range output.Failures {
			u.logger.Printf("post-release refresh failure identity=%s code=%s message=%s", failure.Identity, failure.Code, failure.Message)
		}
	}()
}
