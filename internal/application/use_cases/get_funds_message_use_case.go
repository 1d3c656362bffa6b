package use_cases

import (
	"context"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type getFundsMessageUseCase struct {
	session *BridgeSession
	gate    *AccountGate
}

func NewGetFundsMessageUseCase(session *BridgeSession, gate *AccountGate) portsin.GetFundsMessageUseCase {
	return &getFundsMessageUseCase{session: session, gate: gate}
}

func (u *getFundsMessageUseCase) Execute(
	_ context.Context,
	_ dto.GetFundsMessageQuery,
) (dto.FundsMessageOutput, *apperrors.AppError) {
	if u.session == nil || u.gate == nil {
		return dto.FundsMessageOutput{}, apperrors.NewInternal(
			"bridge_session_missing",
			"bridge session and account gate are required",
			nil,
		)
	}

	return dto.FundsMessageOutput{
		State:            u.session.FundsMessageState().String(),
		SessionID:        u.session.Identity().SessionID,
		TransferInFlight: u.gate.InFlight(),
	}, nil
}
