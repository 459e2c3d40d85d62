package ordersserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Authenticated routes require a valid x-api-key header.
	Authenticated bool
}

// ApiHandleFunctions groups the API implementations mounted by the router.
type ApiHandleFunctions struct {
	OrdersAPI OrdersAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if route.Authenticated {
			handlers = append([]gin.HandlerFunc{RequireAPIKey()}, handlers...)
		}
		router.Handle(route.Method, route.Pattern, handlers...)
	}
	router.NoRoute(func(c *gin.Context) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail("Not Found"))
	})
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"GetOrders",
			http.MethodGet,
			"/ds3500/api/v1/orders",
			handleFunctions.OrdersAPI.GetOrders,
			false,
		},
		{
			"GetOrderById",
			http.MethodGet,
			"/ds3500/api/v1/order",
			handleFunctions.OrdersAPI.GetOrderById,
			false,
		},
		{
			"GetOrdersByPriority",
			http.MethodGet,
			"/ds3500/api/v1/orders/priority",
			handleFunctions.OrdersAPI.GetOrdersByPriority,
			false,
		},
		{
			"GetOrdersAuthenticated",
			http.MethodGet,
			"/ds3500/api/v2/orders",
			handleFunctions.OrdersAPI.GetOrders,
			true,
		},
		{
			"GetPrioritizedOrders",
			http.MethodGet,
			"/ds3500/api/v2/orders/prioritized",
			handleFunctions.OrdersAPI.GetPrioritizedOrders,
			true,
		},
	}
}
