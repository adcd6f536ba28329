package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/goroutine"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/base/metrics"
	"github.com/x-xyz/otc-market/base/tracker"
	bValidator "github.com/x-xyz/otc-market/base/validator"
	"github.com/x-xyz/otc-market/domain"
	mmiddleware "github.com/x-xyz/otc-market/middleware"
	"github.com/x-xyz/otc-market/service/chain"
	"github.com/x-xyz/otc-market/service/chain/contract"
	auction_delivery "github.com/x-xyz/otc-market/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/otc-market/stores/auction/repository"
	auction_usecase "github.com/x-xyz/otc-market/stores/auction/usecase"
	erc721_usecase "github.com/x-xyz/otc-market/stores/erc721/usecase"
	hc_delivery "github.com/x-xyz/otc-market/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/otc-market/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/otc-market/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/otc-market/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/otc-market/stores/listing/repository"
	listing_usecase "github.com/x-xyz/otc-market/stores/listing/usecase"
	"github.com/x-xyz/otc-market/stores/market"
	purchase_delivery "github.com/x-xyz/otc-market/stores/purchase/delivery/http"
	purchase_repository "github.com/x-xyz/otc-market/stores/purchase/repository"
	purchase_usecase "github.com/x-xyz/otc-market/stores/purchase/usecase"
	settlement_delivery "github.com/x-xyz/otc-market/stores/settlement/delivery/http"
	settlement_repository "github.com/x-xyz/otc-market/stores/settlement/repository"
	settlement_usecase "github.com/x-xyz/otc-market/stores/settlement/usecase"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.String("server.address", ":8080", "listen address, overrides the config")
	pflag.Parse()
	if err := viper.BindPFlag("server.address", pflag.Lookup("server.address")); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("server.shutdownTimeout", 10*time.Second)
	viper.SetDefault("marketplace.method", contract.DefaultSettleMethod)

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init chain service
	chainId := viper.GetInt32("chain.chainId")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        map[int32]string{chainId: viper.GetString("chain.rpcUrl")},
		MaxConcurrency: viper.GetInt("chain.maxConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(&contract.Erc721Cfg{
		ChainService: chainService,
		ChainId:      chainId,
		Timeout:      viper.GetDuration("chain.timeout"),
		Retries:      viper.GetInt("chain.retries"),
		RetryBackoff: viper.GetDuration("chain.retryBackoff"),
	})
	marketplace, err := contract.NewMarketplace(&contract.MarketplaceCfg{
		ChainService: chainService,
		ChainId:      chainId,
		Address:      domain.Address(viper.GetString("marketplace.address")),
		Method:       viper.GetString("marketplace.method"),
		GasLimit:     viper.GetUint64("marketplace.gasLimit"),
		GasPriceGwei: viper.GetFloat64("marketplace.gasPriceGwei"),
	})
	if err != nil {
		context.WithField("err", err).Panic("contract.NewMarketplace failed")
	}

	// construct repository, usecase and delivery
	store := market.New()
	listingRepo := listing_repository.New(store)
	purchaseRepo := purchase_repository.New(store)
	auctionRepo := auction_repository.New(store)
	settlementRepo := settlement_repository.New(store)
	hcRepo := hc_repo.New(chainService, chainId)

	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:   listingRepo,
		Oracle: erc721Service,
	})
	purchase := purchase_usecase.New(purchaseRepo)
	auction := auction_usecase.New(auctionRepo)
	settlement := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		Repo:        settlementRepo,
		Builder:     marketplace,
		AllowRepeat: viper.GetBool("settlement.allowRepeat"),
	})
	hc := hc_usecase.New(hcRepo)

	hc_delivery.New(e, hc)
	listing_delivery.New(e, listing)
	purchase_delivery.New(e, purchase)
	auction_delivery.New(e, auction)
	settlement_delivery.New(e, settlement)

	watcherCtx, stopWatcher := ctx.WithCancel(context)
	var watcher *tracker.TransferWatcher
	if viper.GetBool("watcher.enabled") {
		collections := []domain.Address{}
		for _, c := range viper.GetStringSlice("watcher.collections") {
			addr := domain.Address(c).ToLower()
			if ok, err := erc721Service.Supports721Interface(context, addr); err != nil {
				context.WithFields(log.Fields{"err": err, "collection": addr}).Warn("erc721Service.Supports721Interface failed")
			} else if !ok {
				context.WithField("collection", addr).Warn("collection does not declare erc721 support")
			}
			collections = append(collections, addr)
		}

		watcher, err = tracker.NewTransferWatcher(&tracker.TransferWatcherCfg{
			ChainId:        chainId,
			ChainService:   chainService,
			Collections:    collections,
			EventHandl:     tracker.NewErc721EventHandler(erc721_usecase.NewTransferUseCase(listingRepo)),
			PollInterval:   viper.GetDuration("watcher.pollInterval"),
			FollowDistance: viper.GetUint64("watcher.followDistance"),
			MaxBlockRange:  viper.GetUint64("watcher.maxBlockRange"),
			StartBlock:     viper.GetUint64("watcher.startBlock"),
		})
		if err != nil {
			context.WithField("err", err).Panic("tracker.NewTransferWatcher failed")
		}
		watcher.Start(watcherCtx)
		context.WithField("collections", collections).Info("transfer watcher started")
	}

	met := metrics.New("api")
	goroutine.RecoverableGo(context, func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	},
		goroutine.WithAfterEnded(func() {
			log.Log().Info("http server stopped")
		}),
		goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
			met.BumpSum("server.panic", 1)
		}),
	)

	// Wait for interrupt signal to gracefully shutdown the server.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	stopWatcher()
	if watcher != nil {
		watcher.Wait()
	}

	ctx, cancel := ctx.WithTimeout(context, viper.GetDuration("server.shutdownTimeout"))
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
