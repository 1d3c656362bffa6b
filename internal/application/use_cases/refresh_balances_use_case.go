package use_cases

import (
	"context"
	"math/big"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
	portsout "rollupbridge/internal/application/ports/out"
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type refreshBalancesUseCase struct {
	snapshots portsout.BalanceSnapshotRepository
	assets    portsout.AssetRepository
	queries   portsout.BalanceQueryGateway
	clock     Clock

	// flight serializes refreshes per identity: overlapping callers share a
	// single round of balance queries instead of racing each other into the
	// store.
	flight singleflight.Group
}

func NewRefreshBalancesUseCase(
	snapshots portsout.BalanceSnapshotRepository,
	assets portsout.AssetRepository,
	queries portsout.BalanceQueryGateway,
	clock Clock,
) portsin.RefreshBalancesUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &refreshBalancesUseCase{snapshots: snapshots, assets: assets, queries: queries, clock: clock}
}

func (u *refreshBalancesUseCase) Execute(
	ctx context.Context,
	command dto.RefreshBalancesCommand,
) (dto.RefreshBalancesOutput, *apperrors.AppError) {
	if u.snapshots == nil {
		return dto.RefreshBalancesOutput{}, apperrors.NewInternal(
			"balance_snapshot_repository_missing",
			"balance snapshot repository is required",
			nil,
		)
	}
	if u.assets == nil {
		return dto.RefreshBalancesOutput{}, apperrors.NewInternal(
			"asset_repository_missing",
			"asset repository is required",
			nil,
		)
	}
	if u.queries == nil {
		return dto.RefreshBalancesOutput{}, apperrors.NewInternal(
			"balance_query_gateway_missing",
			"balance query gateway is required",
			nil,
		)
	}

	identities, identityErr := u.resolveIdentities(command.Identities)
	if identityErr != nil {
		return dto.RefreshBalancesOutput{}, identityErr
	}

	// One identity failing must not abort its siblings: each identity is
	// refreshed independently and commits or fails on its own.
	var (
		mu        sync.Mutex
		snapshots []dto.BalanceSnapshotResource
		failures  []dto.RefreshFailure
	)
	waitGroup := sync.WaitGroup{}
	for _, identity := range identities {
		waitGroup.Add(1)
		go func(identity valueobjects.AssetIdentity) {
			defer waitGroup.Done()
			snapshot, refreshErr := u.refreshIdentity(ctx, identity)

			mu.Lock()
			defer mu.Unlock()
			if refreshErr != nil {
				failures = append(failures, dto.RefreshFailure{
					Identity: identity.String(),
					Code:     "balance_refresh_failed",
					Message:  "one or more balance queries failed; previous snapshot retained",
					Details: map[string]any{
						"cause_code":    refreshErr.Code,
						"cause_message": refreshErr.Message,
					},
				})
				return
			}
			snapshots = append(snapshots, snapshotResource(snapshot))
		}(identity)
	}
	waitGroup.Wait()

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Identity < snapshots[j].Identity })
	sort.Slice(failures, func(i, j int) bool { return failures[i].Identity < failures[j].Identity })

	return dto.RefreshBalancesOutput{Snapshots: snapshots, Failures: failures}, nil
}

func (u *refreshBalancesUseCase) resolveIdentities(raw []string) ([]valueobjects.AssetIdentity, *apperrors.AppError) {
	if len(raw) == 0 {
		return u.snapshots.Identities(), nil
	}

	seen := map[valueobjects.AssetIdentity]struct{}{}
	identities := make([]valueobjects.AssetIdentity, 0, len(raw))
	for _, entry := range raw {
		identity, identityErr := valueobjects.NormalizeAssetIdentity(entry)
		if identityErr != nil {
			return nil, identityErr
		}
		// The registry owns which identities are tracked; refreshing an
		// unregistered address would silently seed it into the store.
		if _, registered := u.assets.Get(identity); !registered {
			return nil, apperrors.NewNotFound(
				"unknown_asset",
				"asset is not registered",
				map[string]any{"identity": identity.String()},
			)
		}
		if _, duplicate := seen[identity]; duplicate {
			continue
		}
		seen[identity] = struct{}{}
		identities = append(identities, identity)
	}
	return identities, nil
}

// refreshIdentity runs one single-flighted refresh round for an identity:
// reserve a version, fan out the per-location queries, then commit the
// snapshot all-or-nothing. A failed query leaves the previous snapshot in
// place; a commit that lost to a newer round is dropped.
func (u *refreshBalancesUseCase) refreshIdentity(
	ctx context.Context,
	identity valueobjects.AssetIdentity,
) (entities.BalanceSnapshot, *apperrors.AppError) {
	result, err, _ := u.flight.Do(identity.String(), func() (any, error) {
		version := u.snapshots.ReserveVersion(identity)

		var (
			baseBalance    *big.Int
			rollupBalance  *big.Int
			lockboxBalance *big.Int
			approved       bool
		)
		queryGroup, queryCtx := errgroup.WithContext(ctx)
		queryGroup.Go(func() error {
			balance, queryErr := u.queries.QueryBalance(queryCtx, identity, valueobjects.LedgerLocationBase)
			if queryErr != nil {
				return queryErr
			}
			baseBalance = balance
			return nil
		})
		queryGroup.Go(func() error {
			balance, queryErr := u.queries.QueryBalance(queryCtx, identity, valueobjects.LedgerLocationRollup)
			if queryErr != nil {
				return queryErr
			}
			rollupBalance = balance
			return nil
		})
		queryGroup.Go(func() error {
			balance, queryErr := u.queries.QueryBalance(queryCtx, identity, valueobjects.LedgerLocationLockbox)
			if queryErr != nil {
				return queryErr
			}
			lockboxBalance = balance
			return nil
		})
		if !identity.IsNative() {
			queryGroup.Go(func() error {
				allowed, queryErr := u.queries.QueryApproved(queryCtx, identity)
				if queryErr != nil {
					return queryErr
				}
				approved = allowed
				return nil
			})
		}
		if waitErr := queryGroup.Wait(); waitErr != nil {
			return nil, waitErr
		}

		snapshot, snapshotErr := entities.NewBalanceSnapshot(entities.NewBalanceSnapshotInput{
			Identity:            identity,
			BaseLedgerBalance:   baseBalance,
			RollupLedgerBalance: rollupBalance,
			LockboxBalance:      lockboxBalance,
			Approved:            approved,
			Version:             version,
			RefreshedAt:         u.clock.NowUTC(),
		})
		if snapshotErr != nil {
			return nil, snapshotErr
		}

		if !u.snapshots.CommitIfFresh(snapshot) {
			// A newer round already committed; hand the caller the fresher
			// data instead of the stale result.
			if current, known := u.snapshots.Current(identity); known {
				return current, nil
			}
		}
		return snapshot, nil
	})
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return entities.BalanceSnapshot{}, appErr
		}
		return entities.BalanceSnapshot{}, apperrors.NewInternal(
			"balance_refresh_failed",
			"balance refresh failed",
			map[string]any{"identity": identity.String(), "error": err.Error()},
		)
	}

	return result.(entities.BalanceSnapshot), nil
}

func snapshotResource(snapshot entities.BalanceSnapshot) dto.BalanceSnapshotResource {
	return dto.BalanceSnapshotResource{
		Identity:            snapshot.Identity.String(),
		BaseLedgerBalance:   snapshot.BaseLedgerBalance.String(),
		RollupLedgerBalance: snapshot.RollupLedgerBalance.String(),
		LockboxBalance:      snapshot.LockboxBalance.String(),
		Approved:            snapshot.Approved,
		Version:             snapshot.Version,
		RefreshedAt:         snapshot.RefreshedAt,
	}
}
