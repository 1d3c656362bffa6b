package di

import (
	"fmt"
	"log"

	"rollupbridge/internal/adapters/inbound/http/controllers"
	httpRouter "rollupbridge/internal/adapters/inbound/http/router"
	assetregistrymemory "rollupbridge/internal/adapters/outbound/assetregistry/memory"
	balancestorememory "rollupbridge/internal/adapters/outbound/balancestore/memory"
	"rollupbridge/internal/adapters/outbound/docs"
	ledgerbridgedevtest "rollupbridge/internal/adapters/outbound/ledgerbridge/devtest"
	"rollupbridge/internal/application/use_cases"
	"rollupbridge/internal/domain/entities"
	valueobjects "rollupbridge/internal/domain/value_objects"
	"rollupbridge/internal/infrastructure/config"
	"rollupbridge/internal/infrastructure/fundsmonitor"
	"rollupbridge/internal/infrastructure/httpserver"
)

type Container struct {
	Server       *httpserver.Server
	FundsMonitor *fundsmonitor.Worker
	Session      *use_cases.BridgeSession
}

func Build(cfg config.Config, logger *log.Logger) (Container, error) {
	referenceToken, identityErr := valueobjects.NormalizeAssetIdentity(cfg.ReferenceTokenAddress)
	if identityErr != nil {
		return Container{}, fmt.Errorf("reference token address: %s", identityErr.Message)
	}

	session := use_cases.NewBridgeSession(cfg.RollupEndpointID, cfg.WalletAddress)
	gate := use_cases.NewAccountGate()

	assetRepository := assetregistrymemory.NewRepository()
	snapshotRepository := balancestorememory.NewRepository()
	if err := registerNativeAsset(assetRepository, snapshotRepository); err != nil {
		return Container{}, err
	}

	ledgerGateway := ledgerbridgedevtest.NewGateway(ledgerbridgedevtest.Config{
		BaseRPCURL:            cfg.BaseLedgerRPCURL,
		RollupRPCURL:          cfg.RollupLedgerRPCURL,
		RollupEndpointURL:     cfg.RollupEndpointURL,
		WalletAddress:         cfg.WalletAddress,
		BridgeContractAddress: cfg.BridgeContractAddress,
		HTTPTimeout:           cfg.LedgerHTTPTimeout,
		MetadataCacheSize:     cfg.MetadataCacheSize,
	}, logger)

	openAPIReadModel := docs.NewFileOpenAPISpecReadModel(cfg.OpenAPISpecPath)

	healthUseCase := use_cases.NewGetHealthUseCase(session)
	openAPIUseCase := use_cases.NewGetOpenAPISpecUseCase(openAPIReadModel)
	listAssetsUseCase := use_cases.NewListAssetsUseCase(assetRepository)
	registerAssetUseCase := use_cases.NewRegisterAssetUseCase(assetRepository, ledgerGateway, snapshotRepository)
	refreshBalancesUseCase := use_cases.NewRefreshBalancesUseCase(
		snapshotRepository,
		assetRepository,
		ledgerGateway,
		use_cases.NewSystemClock(),
	)
	getBalancesUseCase := use_cases.NewGetBalancesUseCase(snapshotRepository)
	getFundsMessageUseCase := use_cases.NewGetFundsMessageUseCase(session, gate)
	evaluateFundsMessageUseCase := use_cases.NewEvaluateFundsMessageUseCase(
		session,
		snapshotRepository,
		assetRepository,
		refreshBalancesUseCase,
		referenceToken,
	)
	executeTransferUseCase := use_cases.NewExecuteTransferUseCase(
		gate,
		assetRepository,
		snapshotRepository,
		ledgerGateway,
		refreshBalancesUseCase,
		logger,
	)
	releaseLockboxUseCase := use_cases.NewReleaseLockboxUseCase(
		gate,
		assetRepository,
		ledgerGateway,
		refreshBalancesUseCase,
		logger,
	)
	resetSessionUseCase := use_cases.NewResetSessionUseCase(session, snapshotRepository)

	fundsMonitorWorker := fundsmonitor.NewWorker(
		cfg.FundsMonitorEnabled,
		cfg.FundsMonitorPoll,
		evaluateFundsMessageUseCase,
		logger,
	)

	healthController := controllers.NewHealthController(healthUseCase, logger)
	swaggerController := controllers.NewSwaggerController(openAPIUseCase, logger)
	assetsController := controllers.NewAssetsController(listAssetsUseCase, registerAssetUseCase, logger)
	balancesController := controllers.NewBalancesController(getBalancesUseCase, refreshBalancesUseCase, logger)
	fundsMessageController := controllers.NewFundsMessageController(getFundsMessageUseCase, logger)
	transfersController := controllers.NewTransfersController(executeTransferUseCase, releaseLockboxUseCase, logger)
	sessionController := controllers.NewSessionController(resetSessionUseCase, logger)

	router := httpRouter.New(httpRouter.Dependencies{
		HealthController:       healthController,
		SwaggerController:      swaggerController,
		AssetsController:       assetsController,
		BalancesController:     balancesController,
		FundsMessageController: fundsMessageController,
		TransfersController:    transfersController,
		SessionController:      sessionController,
	})

	server := httpserver.New(cfg.Address(), router, logger)

	return Container{
		Server:       server,
		FundsMonitor: fundsMonitorWorker,
		Session:      session,
	}, nil
}

// registerNativeAsset lists the native asset up front. It is always bridgeable
// and has no on-ledger metadata contract to query.
func registerNativeAsset(
	assets *assetregistrymemory.Repository,
	snapshots *balancestorememory.Repository,
) error {
	native, appErr := entities.NewAsset(entities.NewAssetInput{
		Identity: valueobjects.NativeAssetIdentity,
		Symbol:   "ETH",
		Decimals: 18,
		Name:     "Ethereum",
	})
	if appErr != nil {
		return fmt.Errorf("native asset: %s", appErr.Message)
	}

	assets.Put(native)
	snapshots.Seed(native.Identity)
	return nil
}
