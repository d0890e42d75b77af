package artists

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
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	artist, err := h.svc.Create(req)
	if errors.Is(err, ErrUserNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced user does not exist"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist profile"})
		return
	}
	c.JSON(http.StatusCreated, artist)
}

func (h *Handler) GetAll(c *gin.Context) {
	artists, err := h.svc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist profiles"})
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	artist, err := h.svc.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist profile"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	artist, err := h.svc.Update(id, req)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist profile"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	artist, err := h.svc.Delete(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist profile"})
		return
	}
	c.JSON(http.StatusOK, artist)
}
