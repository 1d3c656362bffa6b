package devtest

import (
	"context"
	"encoding/json"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"rollupbridge/internal/application/dto"
	portsout "rollupbridge/internal/application/ports/out"
	valueobjects "rollupbridge/internal/domain/value_objects"
	apperrors "rollupbridge/internal/shared_kernel/errors"
)

const (
	defaultHTTPTimeout       = 5 * time.Second
	defaultMetadataCacheSize = 128

	methodDepositNative        = "bridge_depositEth"
	methodDepositToken         = "bridge_depositToken"
	methodWithdrawNative       = "bridge_withdrawEth"
	methodWithdrawToken        = "bridge_withdrawToken"
	methodApproveToken         = "bridge_approveToken"
	methodWithdrawLockboxNativ = "bridge_withdrawLockboxEth"
	methodWithdrawLockboxToken = "bridge_withdrawLockboxToken"
	methodLockboxBalance       = "bridge_lockboxBalance"
)

type Config struct {
	// BaseRPCURL is a standard EVM JSON-RPC endpoint for the base ledger.
	BaseRPCURL string
	// RollupRPCURL is the EVM-compatible JSON-RPC endpoint of the rollup.
	RollupRPCURL string
	// RollupEndpointURL is the rollup validator endpoint that accepts bridge
	// submissions (deposits, withdrawals, approvals, lockbox operations).
	RollupEndpointURL string
	// WalletAddress is the connected account all submissions originate from.
	WalletAddress string
	// BridgeContractAddress is the allowance spender on the base ledger.
	BridgeContractAddress string
	HTTPTimeout           time.Duration
	MetadataCacheSize     int
}

// Gateway is the devtest ledger bridge: plain JSON-RPC against a base-ledger
// node, a rollup node, and the rollup validator's bridge endpoint. It serves
// balance queries, token metadata lookups, and transfer submission.
type Gateway struct {
	cfg    Config
	rpc    *jsonRPCClient
	logger *log.Logger

	// Token metadata is immutable on-ledger, so resolved lookups are cached.
	metadataCache *lru.Cache[string, dto.AssetMetadata]
}

var (
	_ portsout.BalanceQueryGateway   = (*Gateway)(nil)
	_ portsout.AssetMetadataGateway  = (*Gateway)(nil)
	_ portsout.LedgerTransferGateway = (*Gateway)(nil)
)

func NewGateway(cfg Config, logger *log.Logger) *Gateway {
	httpTimeout := cfg.HTTPTimeout
	if httpTimeout <= 0 {
		httpTimeout = defaultHTTPTimeout
	}
	cacheSize := cfg.MetadataCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultMetadataCacheSize
	}
	metadataCache, _ := lru.New[string, dto.AssetMetadata](cacheSize)

	return &Gateway{
		cfg:           cfg,
		rpc:           newJSONRPCClient(&http.Client{}, httpTimeout),
		logger:        logger,
		metadataCache: metadataCache,
	}
}

func (g *Gateway) QueryBalance(
	ctx context.Context,
	identity valueobjects.AssetIdentity,
	location valueobjects.LedgerLocation,
) (*big.Int, *apperrors.AppError) {
	switch location {
	case valueobjects.LedgerLocationBase:
		return g.ledgerBalance(ctx, g.cfg.BaseRPCURL, identity)
	case valueobjects.LedgerLocationRollup:
		return g.ledgerBalance(ctx, g.cfg.RollupRPCURL, identity)
	case valueobjects.LedgerLocationLockbox:
		return g.lockboxBalance(ctx, identity)
	default:
		return nil, apperrors.NewInternal(
			"ledger_bridge_call_failed",
			"unsupported ledger location",
			map[string]any{"location": location.String()},
		)
	}
}

func (g *Gateway) QueryApproved(
	ctx context.Context,
	identity valueobjects.AssetIdentity,
) (bool, *apperrors.AppError) {
	callData, appErr := buildAllowanceData(g.cfg.WalletAddress, g.cfg.BridgeContractAddress)
	if appErr != nil {
		return false, appErr
	}

	result, rpcErr := g.rpc.Call(ctx, g.cfg.BaseRPCURL, "eth_call", []any{
		map[string]any{"to": identity.String(), "data": callData},
		"latest",
	})
	if rpcErr != nil {
		return false, rpcErr
	}
	allowance, parseErr := parseHexQuantity(result)
	if parseErr != nil {
		return false, parseErr
	}

	return allowance.Sign() > 0, nil
}

func (g *Gateway) LookupAssetMetadata(
	ctx context.Context,
	identity valueobjects.AssetIdentity,
) (dto.AssetMetadata, *apperrors.AppError) {
	if cached, hit := g.metadataCache.Get(identity.String()); hit {
		return cached, nil
	}

	symbolResult, symbolErr := g.contractCall(ctx, identity, selectorSymbol)
	if symbolErr != nil {
		return dto.AssetMetadata{}, symbolErr
	}
	symbol, parseErr := parseABIString(symbolResult)
	if parseErr != nil || strings.TrimSpace(symbol) == "" {
		// Contracts without a decodable symbol are not usable assets.
		return dto.AssetMetadata{}, apperrors.NewNotFound(
			"unknown_asset",
			"contract does not expose token metadata",
			map[string]any{"identity": identity.String()},
		)
	}

	decimalsResult, decimalsErr := g.contractCall(ctx, identity, selectorDecimals)
	if decimalsErr != nil {
		return dto.AssetMetadata{}, decimalsErr
	}
	decimals, decimalsParseErr := parseHexQuantity(decimalsResult)
	if decimalsParseErr != nil {
		return dto.AssetMetadata{}, apperrors.NewNotFound(
			"unknown_asset",
			"contract does not expose token decimals",
			map[string]any{"identity": identity.String()},
		)
	}
	// decimals is a uint8 in the token standard; anything larger is a broken
	// or hostile contract, not a usable asset.
	if !decimals.IsUint64() || decimals.Uint64() > 255 {
		return dto.AssetMetadata{}, apperrors.NewNotFound(
			"unknown_asset",
			"contract reports an out of range decimals value",
			map[string]any{"identity": identity.String(), "decimals": decimals.String()},
		)
	}

	name := symbol
	if nameResult, nameErr := g.contractCall(ctx, identity, selectorName); nameErr == nil {
		if decoded, err := parseABIString(nameResult); err == nil && strings.TrimSpace(decoded) != "" {
			name = decoded
		}
	}

	metadata := dto.AssetMetadata{
		Symbol:   strings.TrimSpace(symbol),
		Decimals: int(decimals.Int64()),
		Name:     strings.TrimSpace(name),
	}
	g.metadataCache.Add(identity.String(), metadata)
	return metadata, nil
}

func (g *Gateway) DepositNative(ctx context.Context, amount *big.Int) *apperrors.AppError {
	return g.submit(ctx, methodDepositNative, []any{g.cfg.WalletAddress, hexQuantity(amount)})
}

func (g *Gateway) DepositToken(ctx context.Context, token valueobjects.AssetIdentity, amount *big.Int) *apperrors.AppError {
	return g.submit(ctx, methodDepositToken, []any{g.cfg.WalletAddress, token.String(), hexQuantity(amount)})
}

func (g *Gateway) WithdrawNative(ctx context.Context, amount *big.Int) *apperrors.AppError {
	return g.submit(ctx, methodWithdrawNative, []any{g.cfg.WalletAddress, hexQuantity(amount)})
}

func (g *Gateway) WithdrawToken(ctx context.Context, token valueobjects.AssetIdentity, amount *big.Int) *apperrors.AppError {
	return g.submit(ctx, methodWithdrawToken, []any{g.cfg.WalletAddress, token.String(), hexQuantity(amount)})
}

func (g *Gateway) Approve(ctx context.Context, token valueobjects.AssetIdentity) *apperrors.AppError {
	return g.submit(ctx, methodApproveToken, []any{g.cfg.WalletAddress, token.String()})
}

func (g *Gateway) WithdrawLockboxNative(ctx context.Context) *apperrors.AppError {
	return g.submit(ctx, methodWithdrawLockboxNativ, []any{g.cfg.WalletAddress})
}

func (g *Gateway) WithdrawLockboxToken(ctx context.Context, token valueobjects.AssetIdentity) *apperrors.AppError {
	return g.submit(ctx, methodWithdrawLockboxToken, []any{g.cfg.WalletAddress, token.String()})
}

func (g *Gateway) ledgerBalance(
	ctx context.Context,
	rpcURL string,
	identity valueobjects.AssetIdentity,
) (*big.Int, *apperrors.AppError) {
	if identity.IsNative() {
		result, rpcErr := g.rpc.Call(ctx, rpcURL, "eth_getBalance", []any{
			strings.ToLower(g.cfg.WalletAddress), "latest",
		})
		if rpcErr != nil {
			return nil, rpcErr
		}
		return parseHexQuantity(result)
	}

	callData, appErr := buildBalanceOfData(g.cfg.WalletAddress)
	if appErr != nil {
		return nil, appErr
	}
	result, rpcErr := g.rpc.Call(ctx, rpcURL, "eth_call", []any{
		map[string]any{"to": identity.String(), "data": callData},
		"latest",
	})
	if rpcErr != nil {
		return nil, rpcErr
	}
	return parseHexQuantity(result)
}

func (g *Gateway) lockboxBalance(
	ctx context.Context,
	identity valueobjects.AssetIdentity,
) (*big.Int, *apperrors.AppError) {
	params := []any{g.cfg.WalletAddress}
	if !identity.IsNative() {
		params = append(params, identity.String())
	}
	result, rpcErr := g.rpc.Call(ctx, g.cfg.RollupEndpointURL, methodLockboxBalance, params)
	if rpcErr != nil {
		return nil, rpcErr
	}
	return parseHexQuantity(result)
}

func (g *Gateway) contractCall(
	ctx context.Context,
	identity valueobjects.AssetIdentity,
	selector string,
) (json.RawMessage, *apperrors.AppError) {
	return g.rpc.Call(ctx, g.cfg.BaseRPCURL, "eth_call", []any{
		map[string]any{"to": identity.String(), "data": selector},
		"latest",
	})
}

func (g *Gateway) submit(ctx context.Context, method string, params []any) *apperrors.AppError {
	result, rpcErr := g.rpc.Call(ctx, g.cfg.RollupEndpointURL, method, params)
	if rpcErr != nil {
		return rpcErr
	}
	if g.logger != nil {
		g.logger.Printf("bridge submission accepted method=%s result=%s", method, string(result))
	}
	return nil
}

func hexQuantity(amount *big.Int) string {
	if amount == nil || amount.Sign() <= 0 {
		return "0x0"
	}
	return "0x" + amount.Text(16)
}
