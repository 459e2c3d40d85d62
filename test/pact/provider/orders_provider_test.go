//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"

	ordersserver "github.com/Apurer/go-gin-orders-api/go"
	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	pacttest "github.com/Apurer/go-gin-orders-api/test/pact"
)

func TestOrdersProviderPact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrdersExist: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seed(t)
			}
			return nil, nil
		},
		pacttest.StateNoOrders: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	repo   *ordermemory.Repository
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	repo := ordermemory.NewRepository()
	service := orderobs.New(orderapp.NewService(repo, orderapp.WithLogger(nil)))

	router := gin.New()
	router.Use(gin.Recovery())
	router = ordersserver.NewRouterWithGinEngine(router, ordersserver.ApiHandleFunctions{
		OrdersAPI: ordersserver.NewOrdersAPI(service),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &contractProviderApp{repo: repo, server: server}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	orders, err := a.repo.List(ctx, orderports.ListFilter{})
	require.NoError(t, err)
	for _, order := range orders {
		require.NoError(t, a.repo.Delete(ctx, order.ID))
	}
}

func (a *contractProviderApp) seed(t testing.TB) {
	t.Helper()
	var orders []orderdomain.RawOrder
	for _, example := range pacttest.ExampleOrders() {
		orders = append(orders, orderdomain.RawOrder{
			ID:       int64(example["id"].(int)),
			Priority: example["priority"].(string),
			Date:     example["date"].(string),
			Quantity: example["quantity"].(int),
		})
	}
	require.NoError(t, a.repo.SaveAll(context.Background(), orders))
}
