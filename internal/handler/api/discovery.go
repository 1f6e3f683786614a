package api

import (
	"net/http"

	"checkout-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	discovery queries.DiscoveryQueries
	catalog   queries.CatalogQueries
}

func NewDiscoveryHandler(discovery queries.DiscoveryQueries, catalog queries.CatalogQueries) *DiscoveryHandler {
	return &DiscoveryHandler{
		discovery: discovery,
		catalog:   catalog,
	}
}

// @Summary Service discovery
// @Description Supported capability and advertised payment handlers
// @Tags discovery
// @Produce json
// @Success 200 {object} readmodel.DiscoveryRM
// @Router /discovery [get]
func (h *DiscoveryHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, h.discovery.Describe(c.Request.Context()))
}

// @Summary List products
// @Description The fixed purchasable product list
// @Tags discovery
// @Produce json
// @Success 200 {array} readmodel.ProductRM
// @Router /products [get]
func (h *DiscoveryHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListProducts(c.Request.Context()))
}
