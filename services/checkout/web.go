package checkout

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopclient/lib/mycontext"
	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
	"github.com/MarcGrol/shopclient/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewService(customerStore mystore.Store[shopmodel.StoredCustomer], storeClient storeapi.StoreClient, nower mytime.Nower, uuider myuuid.UUIDer, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("checkout")
	return &webService{
		logger:  logger,
		service: newService(customerStore, storeClient, nower, uuider, publisher, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/checkout", s.checkoutPage()).Methods("POST")
	router.HandleFunc("/api/orders", s.orderHistoryPage()).Methods("GET")

	err := s.service.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return err
	}

	return nil
}

type checkoutPageResponse struct {
	OrderUID string                    `json:"orderUid"`
	Total    float64                   `json:"total"`
	Items    []shopmodel.CartEntryJSON `json:"items"`
}

func (s *webService) checkoutPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		orderUID, snapshot, err := s.service.checkout(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, checkoutPageResponse{
			OrderUID: orderUID,
			Total:    snapshot.Total,
			Items:    shopmodel.ShoppingCart{Entries: snapshot.Entries}.ToJSON(),
		})
	}
}

type orderHistoryPageResponse struct {
	Orders []storeapi.OrderSummary `json:"orders"`
}

func (s *webService) orderHistoryPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		orders, err := s.service.listOrders(c)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, orderHistoryPageResponse{Orders: orders})
	}
}
