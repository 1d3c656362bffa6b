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

const (
	transferStepApprove  = "approve"
	transferStepDeposit  = "deposit"
	transferStepWithdraw = "withdraw"
	transferStepLockbox  = "lockbox_release"
)

type executeTransferUseCase struct {
	gate      *AccountGate
	assets    portsout.AssetRepository
	snapshots portsout.BalanceSnapshotRepository
	bridge    portsout.LedgerTransferGateway
	refresh   portsin.RefreshBalancesUseCase
	logger    *log.Logger
}

func NewExecuteTransferUseCase(
	gate *AccountGate,
	assets portsout.AssetRepository,
	snapshots portsout.BalanceSnapshotRepository,
	bridge portsout.LedgerTransferGateway,
	refresh portsin.RefreshBalancesUseCase,
	logger *log.Logger,
) portsin.ExecuteTransferUseCase {
	return &executeTransferUseCase{
		gate:      gate,
		assets:    assets,
		snapshots: snapshots,
		bridge:    bridge,
		refresh:   refresh,
		logger:    logger,
	}
}

// Execute sequences the ledger operations for one transfer request. For an
// unapproved token deposit the approve step runs and completes before the
// deposit is attempted; an approve failure aborts without touching the
// deposit. The whole sequence holds the account gate.
func (u *executeTransferUseCase) Execute(
	ctx context.Context,
	command dto.ExecuteTransferCommand,
) (dto.ExecuteTransferOutput, *apperrors.AppError) {
	if u.gate == nil || u.assets == nil || u.snapshots == nil {
		return dto.ExecuteTransferOutput{}, apperrors.NewInternal(
			"transfer_dependencies_missing",
			"account gate, asset repository and snapshot repository are required",
			nil,
		)
	}
	if u.bridge == nil {
		return dto.ExecuteTransferOutput{}, apperrors.NewInternal(
			"ledger_transfer_gateway_missing",
			"ledger transfer gateway is required",
			nil,
		)
	}

	direction, directionErr := valueobjects.ParseTransferDirection(command.Direction)
	if directionErr != nil {
		return dto.ExecuteTransferOutput{}, directionErr
	}
	identity, identityErr := valueobjects.NormalizeAssetIdentity(command.Asset)
	if identityErr != nil {
		return dto.ExecuteTransferOutput{}, identityErr
	}
	amount, amountErr := valueobjects.NormalizeAmountMinor(command.AmountMinor)
	if amountErr != nil {
		return dto.ExecuteTransferOutput{}, amountErr
	}
	if _, registered := u.assets.Get(identity); !registered {
		return dto.ExecuteTransferOutput{}, apperrors.NewNotFound(
			"unknown_asset",
			"asset must be registered before transferring",
			map[string]any{"identity": identity.String()},
		)
	}

	if !u.gate.TryAcquire() {
		return dto.ExecuteTransferOutput{}, busyError()
	}
	defer u.gate.Release()

	approvalPerformed := false
	switch direction {
	case valueobjects.TransferDirectionToRollup:
		if identity.IsNative() {
			if depositErr := u.bridge.DepositNative(ctx, amount); depositErr != nil {
				return dto.ExecuteTransferOutput{}, transferFailed(transferStepDeposit, depositErr)
			}
			break
		}
		if !u.currentlyApproved(identity) {
			if approveErr := u.bridge.Approve(ctx, identity); approveErr != nil {
				return dto.ExecuteTransferOutput{}, transferFailed(transferStepApprove, approveErr)
			}
			approvalPerformed = true
		}
		if depositErr := u.bridge.DepositToken(ctx, identity, amount); depositErr != nil {
			return dto.ExecuteTransferOutput{}, transferFailed(transferStepDeposit, depositErr)
		}
	case valueobjects.TransferDirectionToBase:
		if identity.IsNative() {
			if withdrawErr := u.bridge.WithdrawNative(ctx, amount); withdrawErr != nil {
				return dto.ExecuteTransferOutput{}, transferFailed(transferStepWithdraw, withdrawErr)
			}
			break
		}
		if withdrawErr := u.bridge.WithdrawToken(ctx, identity, amount); withdrawErr != nil {
			return dto.ExecuteTransferOutput{}, transferFailed(transferStepWithdraw, withdrawErr)
		}
	default:
		// Unreachable with the closed direction enumeration; a programmer
		// error, not a runtime condition.
		return dto.ExecuteTransferOutput{}, apperrors.NewValidation(
			"invalid_request",
			"unhandled transfer direction",
			map[string]any{"direction": direction.String()},
		)
	}

	u.refreshAfterTransfer(ctx, identity)

	return dto.ExecuteTransferOutput{
		Direction:         direction.String(),
		Asset:             identity.String(),
		AmountMinor:       amount.String(),
		ApprovalPerformed: approvalPerformed,
	}, nil
}

func (u *executeTransferUseCase) currentlyApproved(identity valueobjects.AssetIdentity) bool {
	snapshot, known := u.snapshots.Current(identity)
	if !known {
		// An unknown approval state costs one redundant approve at worst;
		// skipping a needed one would fail the deposit.
		return false
	}
	return snapshot.Approved
}

// refreshAfterTransfer requests a snapshot refresh for the affected identity
// without awaiting it; the transfer result does not depend on the refresh.
func (u *executeTransferUseCase) refreshAfterTransfer(ctx context.Context, identity valueobjects.AssetIdentity) {
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
			u.logger.Printf("post-transfer refresh failed identity=%s code=%s message=%s", identity, refreshErr.Code, refreshErr.Message)
			return
		}
		for _, failure := range output.Failures {
			u.logger.Printf("post-transfer refresh failure identity=%s code=%s message=%s", failure.Identity, failure.Code, failure.Message)
		}
	}()
}

func busyError() *apperrors.AppError {
	return apperrors.NewConflict(
		"transfer_in_flight",
		"another transfer or lockbox release is already in flight for this account",
		nil,
	)
}

func transferFailed(step string, cause *apperrors.AppError) *apperrors.AppError {
	return apperrors.NewInternal(
		"transfer_failed",
		"a step in the transfer sequence failed",
		map[string]any{
			"step":          step,
			"cause_code":    cause.Code,
			"cause_message": cause.Message,
		},
	)
}
