package collectors

import (
	"errors"
	"net/http"

	"artmarket-api/internal/api/apiutil"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// POST /collector
func (h *Handler) Create(c *gin.Context) {
	var req CreateCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	collector, err := h.svc.Create(req)
	if errors.Is(err, ErrUserNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced user does not exist"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collector profile"})
		return
	}

	c.JSON(http.StatusCreated, collector)
}

// GET /collector
func (h *Handler) GetAll(c *gin.Context) {
	collectors, err := h.svc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collector profiles"})
		return
	}
	c.JSON(http.StatusOK, collectors)
}

// GET /collector/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	collector, err := h.svc.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collector profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collector profile"})
		return
	}
	c.JSON(http.StatusOK, collector)
}

// PUT /collector/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	var req UpdateCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	collector, err := h.svc.Update(id, req)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collector profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collector profile"})
		return
	}
	c.JSON(http.StatusOK, collector)
}

// DELETE /collector/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	collector, err := h.svc.Delete(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collector profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collector profile"})
		return
	}
	c.JSON(http.StatusOK, collector)
}
