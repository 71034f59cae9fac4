package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// CatalogHandler manages catalog endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /items.
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.facade.Items(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	c.JSON(http.StatusOK, dto.ItemsResponse{Data: response})
}

// Get handles GET /items/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, domainErrors.ValidationError{Field: "id"})
		return
	}

	item, err := h.facade.Item(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemsResponse{Data: []dto.ItemResponse{toItemResponse(*item)}})
}

func toItemResponse(item model.Item) dto.ItemResponse {
	return dto.ItemResponse{ID: item.ID, Name: item.Name, Price: item.Price}
}
