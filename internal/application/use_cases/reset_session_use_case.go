package use_cases

import (
	"context"
	"strings"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type resetSessionUseCase struct {
	session   *BridgeSession
	snapshots portsout.BalanceSnapshotRepository
}

func NewResetSessionUseCase(
	session *BridgeSession,
	snapshots portsout.BalanceSnapshotRepository,
) portsin.ResetSessionUseCase {
	return &resetSessionUseCase{session: session, snapshots: snapshots}
}

// Execute starts a new session for a changed bridge identity (typically a
// wallet switch): every balance snapshot is invalidated and the funds message
// machine returns to LOADING. This is the only path back to LOADING.
func (u *resetSessionUseCase) Execute(
	_ context.Context,
	command dto.ResetSessionCommand,
) (dto.ResetSessionOutput, *apperrors.AppError) {
	if u.session == nil || u.snapshots == nil {
		return dto.ResetSessionOutput{}, apperrors.NewInternal(
			"session_dependencies_missing",
			"bridge session and snapshot repository are required",
			nil,
		)
	}

	rollupEndpointID := strings.TrimSpace(command.RollupEndpointID)
	if rollupEndpointID == "" {
		rollupEndpointID = u.session.Identity().RollupEndpointID
	}

	// Invalidate before handing out the new identity so a racing refresh
	// from the old session cannot commit into the new one.
	u.snapshots.InvalidateAll()
	identity := u.session.Reset(rollupEndpointID, command.WalletAddress)

	return dto.ResetSessionOutput{
		SessionID:          identity.SessionID,
		RollupEndpointID:   identity.RollupEndpointID,
		WalletAddress:      identity.WalletAddress,
		SessionEstablished: identity.Established(),
		FundsMessageState:  u.session.FundsMessageState().String(),
	}, nil
}
