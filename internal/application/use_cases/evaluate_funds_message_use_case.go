package use_cases

import (
	"context"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	"rollupbridge/internal/domain/entities"
	"rollupbridge/internal/domain/policies"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type evaluateFundsMessageUseCase struct {
	session        *BridgeSession
	snapshots      portsout.BalanceSnapshotRepository
	assets         portsout.AssetRepository
	refresh        portsin.RefreshBalancesUseCase
	referenceToken valueobjects.AssetIdentity
}

func NewEvaluateFundsMessageUseCase(
	session *BridgeSession,
	snapshots portsout.BalanceSnapshotRepository,
	assets portsout.AssetRepository,
	refresh portsin.RefreshBalancesUseCase,
	referenceToken valueobjects.AssetIdentity,
) portsin.EvaluateFundsMessageUseCase {
	return &evaluateFundsMessageUseCase{
		session:        session,
		snapshots:      snapshots,
		assets:         assets,
		refresh:        refresh,
		referenceToken: referenceToken,
	}
}

// Execute advances the funds message machine one step. When the machine asks
// for fresh data it refreshes the native and reference-token balances and
// re-evaluates on the refreshed snapshots before committing to a state; a
// failed refresh leaves the machine in LOADING for the caller to retry.
func (u *evaluateFundsMessageUseCase) Execute(
	ctx context.Context,
	_ dto.EvaluateFundsMessageCommand,
) (dto.EvaluateFundsMessageOutput, *apperrors.AppError) {
	if u.session == nil || u.snapshots == nil || u.assets == nil {
		return dto.EvaluateFundsMessageOutput{}, apperrors.NewInternal(
			"funds_message_dependencies_missing",
			"session, snapshot repository and asset repository are required",
			nil,
		)
	}
	if u.refresh == nil {
		return dto.EvaluateFundsMessageOutput{}, apperrors.NewInternal(
			"refresh_balances_use_case_missing",
			"refresh balances use case is required",
			nil,
		)
	}

	if !u.session.BeginEvaluation() {
		return dto.EvaluateFundsMessageOutput{}, apperrors.NewConflict(
			"funds_evaluation_in_flight",
			"a funds message evaluation is already running for this session",
			nil,
		)
	}
	defer u.session.EndEvaluation()

	if state := u.session.FundsMessageState(); state.Terminal() {
		return dto.EvaluateFundsMessageOutput{State: state.String()}, nil
	}

	sessionID := u.session.Identity().SessionID
	state, effect := u.session.EvaluateFundsMessage(u.needsFunds(), false)
	if effect != entities.FundsMessageEffectRefresh {
		return dto.EvaluateFundsMessageOutput{State: state.String()}, nil
	}

	identities := []string{valueobjects.NativeAssetIdentity}
	if u.referenceTracked() {
		identities = append(identities, u.referenceToken.String())
	}
	refreshOutput, refreshErr := u.refresh.Execute(ctx, dto.RefreshBalancesCommand{Identities: identities})
	if refreshErr != nil {
		return dto.EvaluateFundsMessageOutput{}, refreshErr
	}
	if len(refreshOutput.Failures) > 0 {
		// Committing to SHOW_REQUEST on the back of a failed query would be
		// guessing; stay in LOADING and let the caller retry.
		return dto.EvaluateFundsMessageOutput{}, apperrors.NewInternal(
			"balance_refresh_failed",
			"funds message evaluation could not refresh balances",
			map[string]any{"failures": refreshOutput.Failures},
		)
	}

	// The refresh is a suspension point: a session reset may have landed in
	// the meantime, in which case this evaluation's data belongs to the old
	// session and must not commit into the new machine.
	state, _, current := u.session.EvaluateFundsMessageIfCurrent(sessionID, u.needsFunds(), true)
	if !current {
		return dto.EvaluateFundsMessageOutput{State: state.String()}, nil
	}
	return dto.EvaluateFundsMessageOutput{State: state.String(), Refreshed: true}, nil
}

func (u *evaluateFundsMessageUseCase) referenceTracked() bool {
	if u.referenceToken == "" {
		return false
	}
	_, tracked := u.assets.Get(u.referenceToken)
	return tracked
}

func (u *evaluateFundsMessageUseCase) needsFunds() bool {
	input := policies.FundsNeedInput{ReferenceListed: u.referenceTracked()}
	if native, known := u.snapshots.Current(valueobjects.NativeAssetIdentity); known {
		input.Native = &native
	}
	if input.ReferenceListed {
		if reference, known := u.snapshots.Current(u.referenceToken); known {
			input.ReferenceToken = &reference
		}
	}
	return policies.NeedsFunds(input)
}
