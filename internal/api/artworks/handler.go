package artworks

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	artwork, err := h.svc.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}
	c.JSON(http.StatusCreated, artwork)
}

func (h *Handler) GetAll(c *gin.Context) {
	artworks, err := h.svc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}
	c.JSON(http.StatusOK, artworks)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	artwork, err := h.svc.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	artwork, err := h.svc.Update(id, req)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}
	c.JSON(http.StatusOK, artwork)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	artwork, err := h.svc.Delete(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	c.JSON(http.StatusOK, artwork)
}
