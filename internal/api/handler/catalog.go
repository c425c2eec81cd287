package handler

import (
	"net/http"

	"github.com/stardrift-game/stardrift/internal/api/response"
	"github.com/stardrift-game/stardrift/internal/catalog"
)

// CatalogHandler serves the static game tables for the presentation layer
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		catalog: cat,
	}
}

// Drones handles GET /api/v1/catalog/drones
func (h *CatalogHandler) Drones(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.DronesFromCatalog(h.catalog.Drones()))
}

// Asteroids handles GET /api/v1/catalog/asteroids
func (h *CatalogHandler) Asteroids(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.AsteroidsFromCatalog(h.catalog.Asteroids()))
}

// CargoTiers handles GET /api/v1/catalog/cargo-tiers
func (h *CatalogHandler) CargoTiers(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TiersFromCatalog(h.catalog.Tiers()))
}
