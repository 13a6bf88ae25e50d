package handlers

import (
	"pocketmart/internal/services"
	"pocketmart/internal/store"
)

type Deps struct {
	AuthHandler      *AuthHandler
	CatalogHandler   *CatalogHandler
	CartHandler      *CartHandler
	DashboardHandler *DashboardHandler
}

func NewDeps(st *store.Store, auth *services.AuthService) *Deps {
	catalogSvc := services.NewCatalogService(st)
	cartSvc := services.NewCartService(st)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: auth},
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		DashboardHandler: &DashboardHandler{Catalog: catalogSvc},
	}
}
