package use_cases

import (
	"context"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type getHealthUseCase struct {
	session *BridgeSession
}

func NewGetHealthUseCase(session *BridgeSession) portsin.GetHealthUseCase {
	return &getHealthUseCase{session: session}
}

func (u *getHealthUseCase) Execute(_ context.Context, _ dto.GetHealthCommand) (dto.HealthOutput, *apperrors.AppError) {
	established := false
	if u.session != nil {
		established = u.session.Identity().Established()
	}

	return dto.HealthOutput{
		Status:             "ok",
		SessionEstablished: established,
	}, nil
}
