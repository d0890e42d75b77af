package auctions

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
	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	auction, err := h.svc.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create auction"})
		return
	}
	c.JSON(http.StatusCreated, auction)
}

func (h *Handler) GetAll(c *gin.Context) {
	list, err := h.svc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load auctions"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	auction, err := h.svc.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load auction"})
		return
	}
	c.JSON(http.StatusOK, auction)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	var req UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	auction, err := h.svc.Update(id, req)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update auction"})
		return
	}
	c.JSON(http.StatusOK, auction)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	auction, err := h.svc.Delete(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Auction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete auction"})
		return
	}
	c.JSON(http.StatusOK, auction)
}
