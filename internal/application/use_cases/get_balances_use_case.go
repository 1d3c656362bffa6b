package use_cases

import (
	"context"
	"sort"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type getBalancesUseCase struct {
	snapshots portsout.BalanceSnapshotRepository
}

func NewGetBalancesUseCase(snapshots portsout.BalanceSnapshotRepository) portsin.GetBalancesUseCase {
	return &getBalancesUseCase{snapshots: snapshots}
}

// Execute is a synchronous read of committed snapshots; it never blocks on a
// ledger and never triggers a refresh.
func (u *getBalancesUseCase) Execute(
	_ context.Context,
	query dto.GetBalancesQuery,
) (dto.GetBalancesOutput, *apperrors.AppError) {
	if u.snapshots == nil {
		return dto.GetBalancesOutput{}, apperrors.NewInternal(
			"balance_snapshot_repository_missing",
			"balance snapshot repository is required",
			nil,
		)
	}

	identities := u.snapshots.Identities()
	if query.Identity != "" {
		identity, identityErr := valueobjects.NormalizeAssetIdentity(query.Identity)
		if identityErr != nil {
			return dto.GetBalancesOutput{}, identityErr
		}
		identities = []valueobjects.AssetIdentity{identity}
	}

	output := dto.GetBalancesOutput{}
	for _, identity := range identities {
		snapshot, known := u.snapshots.Current(identity)
		if !known {
			output.Unknown = append(output.Unknown, identity.String())
			continue
		}
		output.Balances = append(output.Balances, snapshotResource(snapshot))
	}

	sort.Slice(output.Balances, func(i, j int) bool { return output.Balances[i].Identity < output.Balances[j].Identity })
	sort.Strings(output.Unknown)

	return output, nil
}
