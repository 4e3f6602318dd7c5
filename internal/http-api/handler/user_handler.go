package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"userhub/internal/http-api/dto"
	"userhub/internal/http-api/service"
)

// Detail strings kept verbatim from the original service contract.
const (
	detailNotFound      = "Usuario no encontrado"
	detailUsernameTaken = "El nombre de usuario ya está registrado."
	detailEmailTaken    = "El correo electrónico ya está registrado."
	detailStorage       = "Error interno del servidor"
)

const (
	defaultSkip   = 0
	defaultLimit  = 100
	maxListLimit  = 1000
	handlerBudget = 5 * time.Second
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/:user_id", h.Get)
	rg.PUT("/:user_id", h.Update)
	rg.DELETE("/:user_id", h.Delete)
}

func (h *UserHandler) Create(c *gin.Context) {
	var in dto.CreateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerBudget)
	defer cancel()

	user, err := h.svc.Create(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameInUse):
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailUsernameTaken})
		case errors.Is(err, service.ErrEmailInUse):
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailEmailTaken})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": detailStorage})
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) List(c *gin.Context) {
	skip := defaultSkip
	limit := defaultLimit

	// Invalid or out-of-range values keep the defaults rather than erroring.
	if s := c.Query("skip"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= maxListLimit {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerBudget)
	defer cancel()

	list, err := h.svc.List(ctx, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": detailStorage})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerBudget)
	defer cancel()

	user, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": detailStorage})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var in dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerBudget)
	defer cancel()

	user, err := h.svc.Update(ctx, id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
		case errors.Is(err, service.ErrUsernameInUse):
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailUsernameTaken})
		case errors.Is(err, service.ErrEmailInUse):
			c.JSON(http.StatusBadRequest, gin.H{"detail": detailEmailTaken})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": detailStorage})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerBudget)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": detailNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": detailStorage})
		return
	}
	c.Status(http.StatusNoContent)
}

// userID parses the path id. A non-integer id fails path validation the same
// way a malformed body field would.
func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []dto.FieldError{
			{Field: "user_id", Reason: "must be an integer"},
		}})
		return 0, false
	}
	return id, true
}
