package handlers

import (
	"github.com/jmoiron/sqlx"

	"gnstore/internal/app"
	"gnstore/internal/config"
	"gnstore/internal/repos"
	"gnstore/internal/services"
)

type Deps struct {
	Coordinator *app.Coordinator
	Catalog     *services.CatalogService
	Cart        *services.CartService

	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	SearchHandler   *SearchHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	slots := repos.NewSlotRepo(db)

	catalogSvc := services.NewCatalogService(cfg.FeedURL, slots)
	cartSvc := services.NewCartService(slots)
	coord := app.NewCoordinator(catalogSvc, cartSvc)

	return &Deps{
		Coordinator:     coord,
		Catalog:         catalogSvc,
		Cart:            cartSvc,
		ProductHandler:  &ProductHandler{Coord: coord, Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Coord: coord, Catalog: catalogSvc, Cart: cartSvc},
		OrderHandler:    &OrderHandler{Cart: cartSvc, Phone: cfg.WhatsAppPhone},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc},
	}
}
