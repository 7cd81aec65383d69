package internal

import (
	"net/http"

	"alumnirabatt/internal/controllers"
	"alumnirabatt/internal/providers"
)

func InitRoutes(searchController *controllers.SearchController, logoController *controllers.LogoController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/search", http.HandlerFunc(searchController.Search))
	routers.Get("/api/logo", http.HandlerFunc(logoController.Logo))
	return routers
}
