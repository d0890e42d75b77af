package bids

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
	var req CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	bid, err := h.svc.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bid"})
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (h *Handler) GetAll(c *gin.Context) {
	bids, err := h.svc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bids"})
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	bid, err := h.svc.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bid not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bid"})
		return
	}
	c.JSON(http.StatusOK, bid)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	var req UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindingError(c, err)
		return
	}

	bid, err := h.svc.Update(id, req)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bid not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bid"})
		return
	}
	c.JSON(http.StatusOK, bid)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := apiutil.UUIDParam(c)
	if !ok {
		return
	}

	bid, err := h.svc.Delete(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bid not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bid"})
		return
	}
	c.JSON(http.StatusOK, bid)
}
