package ordersserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	orderhttpmapper "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

// OrdersAPI wires HTTP transport with the orders service.
type OrdersAPI struct {
	service orderports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service orderports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Get /ds3500/api/v1/orders
// Get /ds3500/api/v2/orders
// Lists one page of orders
func (api *OrdersAPI) GetOrders(c *gin.Context) {
	req, ok := bindPageRequest(c)
	if !ok {
		return
	}
	page, err := api.service.ListOrders(c.Request.Context(), req)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrdersResponse(page))
}

// Get /ds3500/api/v1/order
// Find order by ID
func (api *OrdersAPI) GetOrderById(c *gin.Context) {
	if _, present := c.GetQuery("id"); !present {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("Missing order ID"))
		return
	}
	var id int64
	if err := runtime.BindQueryParameter("form", true, true, "id", c.Request.URL.Query(), &id); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("Invalid ID type"))
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.Status(http.StatusNoContent)
			return
		}
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderResponse{
		Size:  1,
		Data:  []Order{toTransportOrder(orderhttpmapper.FromDomainOrder(order))},
		Error: false,
	})
}

// Get /ds3500/api/v1/orders/priority
// Finds orders by priority class
func (api *OrdersAPI) GetOrdersByPriority(c *gin.Context) {
	priority, present := c.GetQuery("priority")
	if !present {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("Missing priority value"))
		return
	}
	req, ok := bindPageRequest(c)
	if !ok {
		return
	}
	page, err := api.service.ListByPriority(c.Request.Context(), priority, req)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	if len(page.Orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toOrdersResponse(page))
}

// Get /ds3500/api/v2/orders/prioritized
// Lists one page of orders arranged by priority
func (api *OrdersAPI) GetPrioritizedOrders(c *gin.Context) {
	req, ok := bindPageRequest(c)
	if !ok {
		return
	}
	result, err := api.service.Prioritize(c.Request.Context(), req)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	data := toTransportOrders(orderhttpmapper.FromDomainOrders(result.Orders))
	c.JSON(http.StatusOK, PrioritizedOrdersResponse{
		Size:     len(data),
		Data:     data,
		Ids:      nonNil(result.IDs),
		Rejected: nonNil(result.Rejected),
		HasMore:  result.HasMore,
		Error:    false,
		Meta:     PageMeta{Page: result.Page, PageSize: result.PageSize},
	})
}

func bindPageRequest(c *gin.Context) (orderports.PageRequest, bool) {
	var req orderports.PageRequest
	query := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &req.Page); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("Invalid page"))
		return req, false
	}
	if err := runtime.BindQueryParameter("form", true, false, "page_size", query, &req.PageSize); err != nil {
		respondProblem(c, apierrors.ErrBadRequest.WithDetail("Invalid page size"))
		return req, false
	}
	return req, true
}

func toOrdersResponse(page *orderports.Page) OrdersResponse {
	data := toTransportOrders(orderhttpmapper.FromDomainOrders(page.Orders))
	return OrdersResponse{
		Size:    len(data),
		Data:    data,
		HasMore: page.HasMore,
		Error:   false,
		Meta:    PageMeta{Page: page.Page, PageSize: page.PageSize},
	}
}

func toTransportOrder(order orderhttpmapper.Order) Order {
	return Order{
		Id:       order.ID,
		Priority: order.Priority,
		Date:     order.Date,
		Quantity: order.Quantity,
	}
}

func toTransportOrders(orders []orderhttpmapper.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toTransportOrder(order))
	}
	return result
}

func isNotFound(err error) bool {
	return errors.Is(err, orderports.ErrNotFound)
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
