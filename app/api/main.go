package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/asoebi/goapi/base/clock"
	"github.com/asoebi/goapi/base/ctx"
	"github.com/asoebi/goapi/base/database/mongoclient"
	"github.com/asoebi/goapi/base/log"
	bValidator "github.com/asoebi/goapi/base/validator"
	"github.com/asoebi/goapi/domain"
	"github.com/asoebi/goapi/domain/escrow"
	mmiddleware "github.com/asoebi/goapi/middleware"
	"github.com/asoebi/goapi/service/query"
	asset_delivery "github.com/asoebi/goapi/stores/asset/delivery/http"
	asset_repository "github.com/asoebi/goapi/stores/asset/repository"
	asset_usecase "github.com/asoebi/goapi/stores/asset/usecase"
	auction_delivery "github.com/asoebi/goapi/stores/auction/delivery/http"
	auction_repository "github.com/asoebi/goapi/stores/auction/repository"
	auction_usecase "github.com/asoebi/goapi/stores/auction/usecase"
	auth_delivery "github.com/asoebi/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/asoebi/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/asoebi/goapi/stores/auth/usecase"
	escrow_delivery "github.com/asoebi/goapi/stores/escrow/delivery/http"
	escrow_repository "github.com/asoebi/goapi/stores/escrow/repository"
	escrow_usecase "github.com/asoebi/goapi/stores/escrow/usecase"
	event_delivery "github.com/asoebi/goapi/stores/event/delivery/http"
	event_repository "github.com/asoebi/goapi/stores/event/repository"
	event_usecase "github.com/asoebi/goapi/stores/event/usecase"
	hc_delivery "github.com/asoebi/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/asoebi/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/asoebi/goapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/asoebi/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/asoebi/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/asoebi/goapi/stores/marketplace/usecase"
	wallet_delivery "github.com/asoebi/goapi/stores/wallet/delivery/http"
	wallet_repository "github.com/asoebi/goapi/stores/wallet/repository"
	wallet_usecase "github.com/asoebi/goapi/stores/wallet/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	mmiddleware.SetupCache()

	clk := clock.New()

	escrowAddress := domain.Address(viper.GetString("escrow.escrowAddress")).ToLower()
	engineAddress := domain.Address(viper.GetString("escrow.auctionContract")).ToLower()
	marketplaceAddress := domain.Address(viper.GetString("escrow.marketplaceContract")).ToLower()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	heldBidRepo := auction_repository.NewHeldBidRepo(q)
	orderEscrowRepo := escrow_repository.NewOrderEscrowRepo(q)
	auctionEscrowRepo := escrow_repository.NewAuctionEscrowRepo(q)
	escrowConfigRepo := escrow_repository.NewConfigRepo(q)
	walletRepo := wallet_repository.NewWalletRepo(q)
	assetRepo := asset_repository.NewAssetRepo(q)
	eventRepo := event_repository.NewEventRepo(q)
	userRepo := marketplace_repository.NewUserRepo(q)
	listingRepo := marketplace_repository.NewListingRepo(q)
	orderRepo := marketplace_repository.NewOrderRepo(q)

	hc := hc_usecase.New(hcRepo)
	eventUC := event_usecase.New(&event_usecase.EventUseCaseCfg{
		EventRepo: eventRepo,
		Clock:     clk,
	})
	walletUC := wallet_usecase.New(&wallet_usecase.WalletUseCaseCfg{
		WalletRepo: walletRepo,
		Clock:      clk,
	})
	assetUC := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		AssetRepo: assetRepo,
		EventUC:   eventUC,
		Clock:     clk,
	})
	escrowUC := escrow_usecase.New(&escrow_usecase.EscrowUseCaseCfg{
		OrderEscrowRepo:   orderEscrowRepo,
		AuctionEscrowRepo: auctionEscrowRepo,
		ConfigRepo:        escrowConfigRepo,
		AssetUC:           assetUC,
		WalletUC:          walletUC,
		EventUC:           eventUC,
		Query:             q,
		Clock:             clk,
		EscrowAddress:     escrowAddress,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:   auctionRepo,
		HeldBidRepo:   heldBidRepo,
		AssetUC:       assetUC,
		WalletUC:      walletUC,
		EscrowUC:      escrowUC,
		EventUC:       eventUC,
		Query:         q,
		Clock:         clk,
		EngineAddress: engineAddress,
		EscrowAddress: escrowAddress,
	})
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		UserRepo:           userRepo,
		ListingRepo:        listingRepo,
		OrderRepo:          orderRepo,
		EscrowUC:           escrowUC,
		EventUC:            eventUC,
		Query:              q,
		Clock:              clk,
		MarketplaceAddress: marketplaceAddress,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	// seed the escrow config on first boot, later changes go through the
	// owner-gated update operations
	if _, err := escrowConfigRepo.Get(context); err == domain.ErrNotFound {
		if err := escrowConfigRepo.Upsert(context, &escrow.Config{
			Owner:               domain.Address(viper.GetString("escrow.owner")).ToLower(),
			FeePercentage:       viper.GetInt32("escrow.feePercentage"),
			FeeRecipient:        domain.Address(viper.GetString("escrow.feeRecipient")).ToLower(),
			MarketplaceContract: marketplaceAddress,
			AuctionContract:     engineAddress,
			UpdatedAt:           clk.Now(),
		}); err != nil {
			panic(err)
		}
	} else if err != nil {
		panic(err)
	}

	adminAddresses := viper.GetStringSlice("admin.addresses")
	auth_middleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	auction_delivery.New(e, auctionUC, auth_middleware)
	escrow_delivery.New(e, escrowUC, auth_middleware)
	marketplace_delivery.New(e, marketplaceUC, auth_middleware)
	wallet_delivery.New(e, walletUC, auth_middleware)
	asset_delivery.New(e, assetUC, auth_middleware)
	event_delivery.New(e, eventUC)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, auth_middleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
