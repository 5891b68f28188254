package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
	"github.com/MarcGrol/shopclient/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

var (
	apple = shopmodel.Item{ID: 1, Name: "Apple", Price: 2.5, Stock: 10}
)

func TestCheckout(t *testing.T) {

	t.Run("Checkout success empties the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, nower, uuider, publisher := setup(t, ctrl)

		// given
		seedCustomer(ctx, t, storer, customerWithCart(42, 2))
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		uuider.EXPECT().Create().Return("order-123")
		storeClient.EXPECT().SubmitOrder(gomock.Any(), shopmodel.OrderJSON{
			UserID: 42,
			Items:  []shopmodel.OrderLineJSON{{ID: 1, Quantity: 2}},
			Date:   "2023-02-27T23:58:59Z",
		}).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName,
			checkoutevents.CheckoutCompleted{
				OrderUID:  "order-123",
				UserID:    42,
				Total:     5.0,
				ItemCount: 1,
			})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := checkoutPageResponse{}
		err = json.Unmarshal(response.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, "order-123", got.OrderUID)
		assert.Equal(t, 5.0, got.Total)
		assert.Len(t, got.Items, 1)

		stored, exists, _ := storer.Get(ctx, shopmodel.CurrentCustomerKey)
		assert.True(t, exists)
		assert.True(t, stored.Customer().Cart.IsEmpty())
	})

	t.Run("Checkout rejected by backend leaves cart untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, nower, _, _ := setup(t, ctrl)

		// given
		seedCustomer(ctx, t, storer, customerWithCart(42, 2))
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		storeClient.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(myerrors.NewInvalidInputErrorf("order rejected: Not enough stock for item ID 1"))

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)

		stored, exists, _ := storer.Get(ctx, shopmodel.CurrentCustomerKey)
		assert.True(t, exists)
		assert.Equal(t, 5.0, stored.Customer().Cart.TotalPrice())
	})

	t.Run("Checkout with backend down leaves cart untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, nower, _, _ := setup(t, ctrl)

		// given
		seedCustomer(ctx, t, storer, customerWithCart(42, 2))
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		storeClient.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(myerrors.NewUnavailableError(assert.AnError))

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 503, response.Code)

		stored, _, _ := storer.Get(ctx, shopmodel.CurrentCustomerKey)
		assert.Equal(t, 5.0, stored.Customer().Cart.TotalPrice())
	})

	t.Run("Checkout with empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/checkout", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})
}

func TestOrderHistory(t *testing.T) {

	t.Run("Order history success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, _, _, _ := setup(t, ctrl)

		// given
		seedCustomer(ctx, t, storer, customerWithCart(42, 1))
		storeClient.EXPECT().FetchOrderHistory(gomock.Any(), 42).Return([]storeapi.OrderSummary{
			{ID: 7, Date: "2023-02-27T23:58:59Z", Items: []shopmodel.OrderLineJSON{{ID: 1, Quantity: 2}}, Total: 5.5},
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/orders", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := orderHistoryPageResponse{}
		err = json.Unmarshal(response.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Len(t, got.Orders, 1)
		assert.Equal(t, 7, got.Orders[0].ID)
	})

	t.Run("Order history requires a registered customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/orders", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 403, response.Code)
	})
}

func customerWithCart(userID int, quantity int) shopmodel.Customer {
	customer := shopmodel.NewCustomer()
	customer.ID = userID
	item := apple
	customer.AddToCart(&item, quantity)
	return customer
}

func seedCustomer(ctx context.Context, t *testing.T, storer mystore.Store[shopmodel.StoredCustomer], customer shopmodel.Customer) {
	stored, err := customer.Stored()
	assert.NoError(t, err)
	err = storer.Put(ctx, shopmodel.CurrentCustomerKey, stored)
	assert.NoError(t, err)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[shopmodel.StoredCustomer], *storeapi.MockStoreClient, *mytime.MockNower, *myuuid.MockUUIDer, *mypublisher.MockPublisher) {
	c := context.TODO()
	storer, _, _ := mystore.New[shopmodel.StoredCustomer](c)
	storeClient := storeapi.NewMockStoreClient(ctrl)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(storer, storeClient, nower, uuider, publisher)
	router := mux.NewRouter()

	// This is called by the following call to RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, storer, storeClient, nower, uuider, publisher
}
