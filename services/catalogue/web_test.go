package catalogue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopclient/lib/myevents"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mypubsub"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/services/catalogue/catalogueevents"
	"github.com/MarcGrol/shopclient/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

var (
	apple  = shopmodel.Item{ID: 1, Name: "Apple", Price: 2.5, Stock: 10}
	banana = shopmodel.Item{ID: 2, Name: "Banana", Price: 1.0, Stock: 5}
)

func TestCatalogueService(t *testing.T) {

	t.Run("List items is sorted by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, _, _ := setup(t, ctrl)

		// given
		storer.Put(ctx, "2", banana)
		storer.Put(ctx, "1", apple)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalogue", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := itemListPageResponse{}
		err = json.Unmarshal(response.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, []shopmodel.Item{apple, banana}, got.Items)
	})

	t.Run("Get item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, _, _ := setup(t, ctrl)

		// given
		storer.Put(ctx, "1", apple)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalogue/1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := shopmodel.Item{}
		err = json.Unmarshal(response.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, apple, got)
	})

	t.Run("Get item not exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalogue/666", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Get item with non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/catalogue/apple", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Refresh mirrors the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, publisher := setup(t, ctrl)

		// given
		storeClient.EXPECT().FetchItems(gomock.Any()).Return([]shopmodel.Item{apple, banana}, nil)
		publisher.EXPECT().Publish(gomock.Any(), catalogueevents.TopicName,
			catalogueevents.CatalogueRefreshed{ItemCount: 2})

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/catalogue/refresh", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		item, exists, _ := storer.Get(ctx, "1")
		assert.True(t, exists)
		assert.Equal(t, apple, item)
		item, exists, _ = storer.Get(ctx, "2")
		assert.True(t, exists)
		assert.Equal(t, banana, item)
	})

	t.Run("Refresh with backend down leaves mirror untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, _ := setup(t, ctrl)

		// given
		storer.Put(ctx, "1", apple)
		storeClient.EXPECT().FetchItems(gomock.Any()).Return(nil, assert.AnError)

		// when
		request, err := http.NewRequest(http.MethodPut, "/api/catalogue/refresh", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		item, exists, _ := storer.Get(ctx, "1")
		assert.True(t, exists)
		assert.Equal(t, apple, item)
	})

	t.Run("Handle checkout completed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, storer, storeClient, publisher := setup(t, ctrl)

		// given
		refreshed := apple
		refreshed.Stock = 8
		storeClient.EXPECT().FetchItems(gomock.Any()).Return([]shopmodel.Item{refreshed}, nil)
		publisher.EXPECT().Publish(gomock.Any(), catalogueevents.TopicName,
			catalogueevents.CatalogueRefreshed{ItemCount: 1})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/catalogue/event", strings.NewReader(createPubsubMessage(
			checkoutevents.CheckoutCompleted{
				OrderUID:  "order-123",
				UserID:    42,
				Total:     5.0,
				ItemCount: 1,
			})))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		item, exists, _ := storer.Get(ctx, "1")
		assert.True(t, exists)
		assert.Equal(t, 8, item.Stock)
	})
}

func createPubsubMessage(event checkoutevents.CheckoutCompleted) string {
	eventBytes, _ := json.Marshal(event)
	envelope := myevents.EventEnvelope{
		UID:           "123",
		CreatedAt:     mytime.ExampleTime,
		Topic:         checkoutevents.TopicName,
		AggregateUID:  event.OrderUID,
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(eventBytes),
	}
	envelopeBytes, _ := json.Marshal(envelope)

	req := myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: envelopeBytes,
		},
		Subscription: checkoutevents.TopicName,
	}

	reqBytes, _ := json.Marshal(req)

	return string(reqBytes)
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[shopmodel.Item], *storeapi.MockStoreClient, *mypublisher.MockPublisher) {
	c := context.TODO()
	storer, _, _ := mystore.New[shopmodel.Item](c)
	storeClient := storeapi.NewMockStoreClient(ctrl)
	subscriber := mypubsub.NewMockPubSub(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(storer, storeClient, subscriber, publisher)
	router := mux.NewRouter()

	// These are called by the following call to RegisterEndpoints()
	publisher.EXPECT().CreateTopic(c, catalogueevents.TopicName).Return(nil)
	subscriber.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)
	subscriber.EXPECT().Subscribe(c, checkoutevents.TopicName, "http://localhost:8080/api/catalogue/event").Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, storer, storeClient, publisher
}
