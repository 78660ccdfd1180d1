package api

import (
	"context"
	"errors"
	"net/http"

	"decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"
	reqdto "decor-market/internal/handler/dto/request"
	resdto "decor-market/internal/handler/dto/response"
	"decor-market/internal/handler/middleware"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/commands"
	"decor-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DecoratorHandler struct {
	decoratorCommands commands.DecoratorCommands
	decoratorQueries  queries.DecoratorQueries
}

func NewDecoratorHandler(
	decoratorCommands commands.DecoratorCommands,
	decoratorQueries queries.DecoratorQueries,
) *DecoratorHandler {
	return &DecoratorHandler{
		decoratorCommands: decoratorCommands,
		decoratorQueries:  decoratorQueries,
	}
}

// @Summary Apply as decorator
// @Description Submit a decorator application for the authenticated user
// @Tags decorators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyDecoratorRequest true "Application"
// @Success 201 {object} resdto.DecoratorResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /decorators/apply [post]
func (h *DecoratorHandler) Apply(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ApplyDecoratorRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	dec, err := h.decoratorCommands.Apply(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDecoratorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Decorator application already exists",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDecorator(dec))
}

// @Summary Approve decorator
// @Description Approve a pending decorator application
// @Tags decorators
// @Produce json
// @Security BearerAuth
// @Param email path string true "Decorator email"
// @Success 200 {object} resdto.DecoratorResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /decorators/{email}/approve [post]
func (h *DecoratorHandler) Approve(c *gin.Context) {
	h.mutate(c, h.decoratorCommands.Approve)
}

// @Summary Disable decorator
// @Description Retire a decorator from new assignments
// @Tags decorators
// @Produce json
// @Security BearerAuth
// @Param email path string true "Decorator email"
// @Success 200 {object} resdto.DecoratorResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /decorators/{email}/disable [post]
func (h *DecoratorHandler) Disable(c *gin.Context) {
	h.mutate(c, h.decoratorCommands.Disable)
}

// @Summary List decorators
// @Description List decorator profiles, optionally filtered by status
// @Tags decorators
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, active, disabled)"
// @Success 200 {array} resdto.DecoratorResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /decorators [get]
func (h *DecoratorHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	views, err := h.decoratorQueries.List(c.Request.Context(), actor, status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only admins can list decorators",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.DecoratorResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromDecoratorView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Decorator earnings
// @Description Aggregate completed bookings and earnings for one decorator
// @Tags decorators
// @Produce json
// @Security BearerAuth
// @Param email path string true "Decorator email"
// @Success 200 {object} resdto.EarningsResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /decorators/{email}/earnings [get]
func (h *DecoratorHandler) Earnings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	email := c.Param("email")
	if email == "me" {
		email = actor.Email
	}

	view, err := h.decoratorQueries.Earnings(c.Request.Context(), actor, email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view these earnings",
			})
		case errors.Is(err, errs.ErrDecoratorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Decorator not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarningsView(view))
}

type decoratorMutation func(ctx context.Context, actor user.Actor, email string) (*decorator.Decorator, error)

func (h *DecoratorHandler) mutate(c *gin.Context, fn decoratorMutation) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	dec, err := fn(c.Request.Context(), actor, c.Param("email"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only admins can manage decorators",
			})
		case errors.Is(err, errs.ErrDecoratorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Decorator not found",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Decorator is not in a state that allows this change",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDecorator(dec))
}
