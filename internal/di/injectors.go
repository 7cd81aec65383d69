//go:build wireinject
// +build wireinject

package di

import (
	"alumnirabatt/internal"
	"alumnirabatt/internal/controllers"
	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/services"
	"alumnirabatt/internal/structures"
	"alumnirabatt/internal/upstream"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewZstdCompressor,
		providers.NewInstrumentedCacheProvider,
		providers.NewHTTPClient,

		upstream.NewStudentkortetClient,
		upstream.NewMecenatClient,
		upstream.NewImageFetcher,
		services.NewSearchService,
		services.NewLogoService,
		controllers.NewSearchController,
		controllers.NewLogoController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
