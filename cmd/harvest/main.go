package main

import (
	"context"
	"log/slog"
	"os"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/http"
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"
	"harvest/internal/domain/service"
	"harvest/internal/infra/firebase"
	"harvest/internal/infra/geo"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/payment"
	"harvest/internal/infra/pubsub"
	"harvest/internal/infra/qrcode"
	"harvest/internal/infra/storage"
	"harvest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewCatalogRepository,
			firebase.NewProductRepository,
			firebase.NewCartRepository,
			firebase.NewFavoriteRepository,
			firebase.NewProfileRepository,
			firebase.NewOrderRepository,
			firebase.NewRegistrationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityService,
			storage.New,
			payment.New,
			geo.NewLocator,
			geo.NewGeocoder,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewFavoriteService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewVendorService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewFavoriteHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewAccountHandler,
			handler.NewVendorHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
