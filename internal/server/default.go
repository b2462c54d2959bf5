package server

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	catalogcontrollers "github.com/sendikahq/sendika/modules/catalog/presentation/controllers"
	catalogpersistence "github.com/sendikahq/sendika/modules/catalog/infrastructure/persistence"
	catalogservices "github.com/sendikahq/sendika/modules/catalog/services"
	memberscontrollers "github.com/sendikahq/sendika/modules/members/presentation/controllers"
	memberspersistence "github.com/sendikahq/sendika/modules/members/infrastructure/persistence"
	membersservices "github.com/sendikahq/sendika/modules/members/services"
	"github.com/sendikahq/sendika/modules/members/importing"
	"github.com/sendikahq/sendika/pkg/configuration"
	"github.com/sendikahq/sendika/pkg/constants"
	"github.com/sendikahq/sendika/pkg/eventbus"
	"github.com/sendikahq/sendika/pkg/metrics"
	"github.com/sendikahq/sendika/pkg/middleware"
	"github.com/sendikahq/sendika/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Pool          *pgxpool.Pool
}

func Default(options *DefaultOptions) *server.HTTPServer {
	conf := options.Configuration

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   conf.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, conf.RequestIDHeader),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.ProvideUser(conf.ActingUserHeader),
		corsHandler.Handler,
	}

	bus := eventbus.NewEventPublisher(options.Logger)

	memberRepo := memberspersistence.NewMemberRepository()
	catalogRepo := catalogpersistence.NewCatalogRepository()

	memberService := membersservices.NewMemberService(memberRepo, bus)
	catalogService := catalogservices.NewCatalogService(catalogRepo)
	importService := membersservices.NewImportService(
		memberRepo,
		catalogRepo,
		bus,
		options.Logger,
		importing.Limits{
			MaxFileSize: conf.Import.MaxFileSize,
			MaxRows:     conf.Import.MaxRows,
			PreviewRows: conf.Import.PreviewRows,
		},
	)

	controllers := []server.Controller{
		memberscontrollers.NewMemberAPIController(memberService),
		memberscontrollers.NewMemberImportController(importService, conf.Import.MaxFileSize),
		catalogcontrollers.NewCatalogAPIController(catalogService),
	}
	if conf.Prometheus.Enabled {
		controllers = append(controllers, metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	return server.NewHTTPServer(controllers, middlewares)
}
