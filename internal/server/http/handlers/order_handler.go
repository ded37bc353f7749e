package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/domain/model"
	"github.com/avolkou/crmdesk/internal/server/http/dto"
)

// orderImagesField is the multipart file array field carrying attachments.
const orderImagesField = "orderImages"

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderListingResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.NewOrderListingResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Create handles POST /orders: multipart scalar fields plus an optional
// orderImages file array.
func (h *OrderHandler) Create(c *gin.Context) {
	draft, err := orderDraftFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), draft, formUploads(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(*order))
}

// Update handles PUT /orders/:id. New uploads are appended after the
// order's existing attachments.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	draft, err := orderDraftFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, draft, formUploads(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Delete handles DELETE /orders/:id, removing the row and the order's
// attachment directory.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func orderDraftFromForm(c *gin.Context) (model.OrderDraft, error) {
	draft := model.OrderDraft{
		Amount: c.PostForm("amount"),
		Status: c.PostForm("status"),
	}

	if v := c.PostForm("client_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return draft, domainErrors.Validationf("client_id %q is not an integer", v)
		}
		draft.ClientID = id
	}

	if v, ok := c.GetPostForm("description"); ok {
		draft.Description = &v
	}

	return draft, nil
}

func formUploads(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[orderImagesField]
}
