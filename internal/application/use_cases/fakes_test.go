//go:build !integration

package use_cases

import (
	"context"
	"math/big"
	"sync"
	"time"

	"rollupbridge/internal/application/dto"
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) NowUTC() time.Time {
	return c.now
}

type fakeAssetRepository struct {
	mu     sync.Mutex
	assets map[valueobjects.AssetIdentity]entities.Asset
}

func newFakeAssetRepository(assets ...entities.Asset) *fakeAssetRepository {
	repo := &fakeAssetRepository{assets: map[valueobjects.AssetIdentity]entities.Asset{}}
	for _, asset := range assets {
		repo.assets[asset.Identity] = asset
	}
	return repo
}

func (r *fakeAssetRepository) Put(asset entities.Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.assets[asset.Identity]; exists {
		return
	}
	r.assets[asset.Identity] = asset
}

func (r *fakeAssetRepository) Get(identity valueobjects.AssetIdentity) (entities.Asset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, found := r.assets[identity]
	return asset, found
}

func (r *fakeAssetRepository) List() []entities.Asset {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Asset, 0, len(r.assets))
	for _, asset := range r.assets {
		out = append(out, asset)
	}
	return out
}

type fakeSnapshotState struct {
	snapshot     entities.BalanceSnapshot
	committed    bool
	nextVersion  uint64
	floorVersion uint64
}

type fakeSnapshotRepository struct {
	mu              sync.Mutex
	states          map[valueobjects.AssetIdentity]*fakeSnapshotState
	invalidateCalls int
}

func newFakeSnapshotRepository() *fakeSnapshotRepository {
	return &fakeSnapshotRepository{states: map[valueobjects.AssetIdentity]*fakeSnapshotState{}}
}

func (r *fakeSnapshotRepository) stateFor(identity valueobjects.AssetIdentity) *fakeSnapshotState {
	state, tracked := r.states[identity]
	if !tracked {
		state = &fakeSnapshotState{}
		r.states[identity] = state
	}
	return state
}

func (r *fakeSnapshotRepository) Seed(identity valueobjects.AssetIdentity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stateFor(identity)
}

func (r *fakeSnapshotRepository) Identities() []valueobjects.AssetIdentity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]valueobjects.AssetIdentity, 0, len(r.states))
	for identity := range r.states {
		out = append(out, identity)
	}
	return out
}

func (r *fakeSnapshotRepository) Current(identity valueobjects.AssetIdentity) (entities.BalanceSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, tracked := r.states[identity]
	if !tracked || !state.committed {
		return entities.BalanceSnapshot{}, false
	}
	return state.snapshot, true
}

func (r *fakeSnapshotRepository) ReserveVersion(identity valueobjects.AssetIdentity) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.stateFor(identity)
	state.nextVersion++
	return state.nextVersion
}

func (r *fakeSnapshotRepository) CommitIfFresh(snapshot entities.BalanceSnapshot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.stateFor(snapshot.Identity)
	if snapshot.Version <= state.floorVersion {
		return false
	}
	if state.committed && snapshot.Version <= state.snapshot.Version {
		return false
	}
	state.snapshot = snapshot
	state.committed = true
	return true
}

func (r *fakeSnapshotRepository) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidateCalls++
	for _, state := range r.states {
		state.committed = false
		state.snapshot = entities.BalanceSnapshot{}
		state.floorVersion = state.nextVersion
	}
}

func (r *fakeSnapshotRepository) commit(identity valueobjects.AssetIdentity, rollup int64, approved bool) {
	version := r.ReserveVersion(identity)
	snapshot, appErr := entities.NewBalanceSnapshot(entities.NewBalanceSnapshotInput{
		Identity:            identity,
		BaseLedgerBalance:   big.NewInt(0),
		RollupLedgerBalance: big.NewInt(rollup),
		LockboxBalance:      big.NewInt(0),
		Approved:            approved,
		Version:             version,
	})
	if appErr != nil {
		panic(appErr.Message)
	}
	r.CommitIfFresh(snapshot)
}

type balanceKey struct {
	identity valueobjects.AssetIdentity
	location valueobjects.LedgerLocation
}

type fakeBalanceQueryGateway struct {
	mu       sync.Mutex
	balances map[balanceKey]*big.Int
	approved map[valueobjects.AssetIdentity]bool
	failWith map[balanceKey]*apperrors.AppError
	calls    int
}

func newFakeBalanceQueryGateway() *fakeBalanceQueryGateway {
	return &fakeBalanceQueryGateway{
		balances: map[balanceKey]*big.Int{},
		approved: map[valueobjects.AssetIdentity]bool{},
		failWith: map[balanceKey]*apperrors.AppError{},
	}
}

func (g *fakeBalanceQueryGateway) setBalance(identity valueobjects.AssetIdentity, location valueobjects.LedgerLocation, value int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balances[balanceKey{identity: identity, location: location}] = big.NewInt(value)
}

func (g *fakeBalanceQueryGateway) setAllBalances(identity valueobjects.AssetIdentity, value int64) {
	for _, location := range valueobjects.BalanceLocations() {
		g.setBalance(identity, location, value)
	}
}

func (g *fakeBalanceQueryGateway) failLocation(identity valueobjects.AssetIdentity, location valueobjects.LedgerLocation, appErr *apperrors.AppError) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failWith[balanceKey{identity: identity, location: location}] = appErr
}

func (g *fakeBalanceQueryGateway) QueryBalance(
	_ context.Context,
	identity valueobjects.AssetIdentity,
	location valueobjects.LedgerLocation,
) (*big.Int, *apperrors.AppError) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	key := balanceKey{identity: identity, location: location}
	if appErr, failing := g.failWith[key]; failing {
		return nil, appErr
	}
	if balance, known := g.balances[key]; known {
		return new(big.Int).Set(balance), nil
	}
	return big.NewInt(0), nil
}

func (g *fakeBalanceQueryGateway) QueryApproved(
	_ context.Context,
	identity valueobjects.AssetIdentity,
) (bool, *apperrors.AppError) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.approved[identity], nil
}

type fakeTransferGateway struct {
	mu       sync.Mutex
	steps    []string
	failStep string
	failErr  *apperrors.AppError
	block    chan struct{}
}

func newFakeTransferGateway() *fakeTransferGateway {
	return &fakeTransferGateway{}
}

func (g *fakeTransferGateway) record(step string) *apperrors.AppError {
	if g.block != nil {
		<-g.block
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.steps = append(g.steps, step)
	if g.failStep == step {
		return g.failErr
	}
	return nil
}

func (g *fakeTransferGateway) recorded() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.steps))
	copy(out, g.steps)
	return out
}

func (g *fakeTransferGateway) DepositNative(context.Context, *big.Int) *apperrors.AppError {
	return g.record("deposit_native")
}

func (g *fakeTransferGateway) DepositToken(_ context.Context, _ valueobjects.AssetIdentity, _ *big.Int) *apperrors.AppError {
	return g.record("deposit_token")
}

func (g *fakeTransferGateway) WithdrawNative(context.Context, *big.Int) *apperrors.AppError {
	return g.record("withdraw_native")
}

func (g *fakeTransferGateway) WithdrawToken(_ context.Context, _ valueobjects.AssetIdentity, _ *big.Int) *apperrors.AppError {
	return g.record("withdraw_token")
}

func (g *fakeTransferGateway) Approve(_ context.Context, _ valueobjects.AssetIdentity) *apperrors.AppError {
	return g.record("approve")
}

func (g *fakeTransferGateway) WithdrawLockboxNative(context.Context) *apperrors.AppError {
	return g.record("withdraw_lockbox_native")
}

func (g *fakeTransferGateway) WithdrawLockboxToken(_ context.Context, _ valueobjects.AssetIdentity) *apperrors.AppError {
	return g.record("withdraw_lockbox_token")
}

type fakeMetadataGateway struct {
	metadata map[valueobjects.AssetIdentity]dto.AssetMetadata
	err      *apperrors.AppError
	calls    int
}

func (g *fakeMetadataGateway) LookupAssetMetadata(
	_ context.Context,
	identity valueobjects.AssetIdentity,
) (dto.AssetMetadata, *apperrors.AppError) {
	g.calls++
	if g.err != nil {
		return dto.AssetMetadata{}, g.err
	}
	metadata, found := g.metadata[identity]
	if !found {
		return dto.AssetMetadata{}, apperrors.NewNotFound("unknown_asset", "no metadata", nil)
	}
	return metadata, nil
}

type fakeRefreshUseCase struct {
	mu       sync.Mutex
	requests [][]string
	output   dto.RefreshBalancesOutput
	err      *apperrors.AppError
	done     chan struct{}
	onRun    func(identities []string)
}

func (u *fakeRefreshUseCase) Execute(
	_ context.Context,
	command dto.RefreshBalancesCommand,
) (dto.RefreshBalancesOutput, *apperrors.AppError) {
	u.mu.Lock()
	u.requests = append(u.requests, command.Identities)
	onRun := u.onRun
	u.mu.Unlock()
	if onRun != nil {
		onRun(command.Identities)
	}
	if u.done != nil {
		defer close(u.done)
	}
	if u.err != nil {
		return dto.RefreshBalancesOutput{}, u.err
	}
	return u.output, nil
}

func (u *fakeRefreshUseCase) recordedRequests() [][]string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([][]string, len(u.requests))
	copy(out, u.requests)
	return out
}

func tokenAsset(identity valueobjects.AssetIdentity) entities.Asset {
	asset, appErr := entities.NewAsset(entities.NewAssetInput{
		Identity: identity,
		Symbol:   "TKN",
		Decimals: 18,
		Name:     "Test Token",
	})
	if appErr != nil {
		panic(appErr.Message)
	}
	return asset
}

func nativeAsset() entities.Asset {
	asset, appErr := entities.NewAsset(entities.NewAssetInput{
		Identity: valueobjects.NativeAssetIdentity,
		Symbol:   "ETH",
		Decimals: 18,
		Name:     "Ethereum",
	})
	if appErr != nil {
		panic(appErr.Message)
	}
	return asset
}

func mustIdentity(raw string) valueobjects.AssetIdentity {
	identity, appErr := valueobjects.NormalizeAssetIdentity(raw)
	if appErr != nil {
		panic(appErr.Message)
	}
	return identity
}
