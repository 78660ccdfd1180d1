package api

import (
	"errors"
	"net/http"
	"strings"

	resdto "decor-market/internal/handler/dto/response"
	"decor-market/internal/handler/middleware"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries   queries.CatalogQueries
	pricingQueries   queries.PricingQueries
	analyticsQueries queries.AnalyticsQueries
}

func NewCatalogHandler(
	catalogQueries queries.CatalogQueries,
	pricingQueries queries.PricingQueries,
	analyticsQueries queries.AnalyticsQueries,
) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries:   catalogQueries,
		pricingQueries:   pricingQueries,
		analyticsQueries: analyticsQueries,
	}
}

// @Summary List services
// @Description List active catalog services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ServiceResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromServiceView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Price quote
// @Description Compute the discount breakdown for a service and optional coupon
// @Tags catalog
// @Produce json
// @Param service_id query string true "Service ID"
// @Param coupon_code query string false "Coupon code"
// @Success 200 {object} resdto.PricingQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/quote [get]
func (h *CatalogHandler) Quote(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var couponCode *string
	if code := strings.TrimSpace(c.Query("coupon_code")); code != "" {
		couponCode = &code
	}

	view, err := h.pricingQueries.Quote(c.Request.Context(), serviceID, couponCode)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found or not valid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPricingQuoteView(view))
}

// @Summary Revenue analytics
// @Description Admin-only revenue aggregates over paid bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RevenueResponse
// @Failure 403 {object} map[string]string
// @Router /admin/analytics/revenue [get]
func (h *CatalogHandler) Revenue(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.analyticsQueries.Revenue(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only admins can view analytics",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueView(view))
}
