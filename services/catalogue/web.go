package catalogue

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopclient/lib/mycontext"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mypubsub"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewService(itemStore mystore.Store[shopmodel.Item], storeClient storeapi.StoreClient, subscriber mypubsub.PubSub, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("catalogue")
	return &webService{
		logger:  logger,
		service: newService(itemStore, storeClient, subscriber, publisher, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/catalogue", s.listPage()).Methods("GET")
	router.HandleFunc("/api/catalogue/refresh", s.refreshPage()).Methods("PUT")
	router.HandleFunc("/api/catalogue/event", s.eventPage()).Methods("POST")
	router.HandleFunc("/api/catalogue/{itemID}", s.itemPage()).Methods("GET")

	err := s.service.Subscribe(c)
	if err != nil {
		return err
	}

	return nil
}

type itemListPageResponse struct {
	Items []shopmodel.Item `json:"items"`
}

func (s *webService) listPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		items, err := s.service.listItems(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, itemListPageResponse{Items: items})
	}
}

type refreshPageResponse struct {
	ItemCount int `json:"itemCount"`
}

func (s *webService) refreshPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		count, err := s.service.refresh(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, refreshPageResponse{ItemCount: count})
	}
}

func (s *webService) itemPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		itemID, err := strconv.Atoi(mux.Vars(r)["itemID"])
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("item id must be numeric"))
			return
		}

		item, err := s.service.getItem(c, itemID)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, item)
	}
}

func (s *webService) eventPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		err := checkoutevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}
