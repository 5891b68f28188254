package storeapi

import (
	"context"

	"github.com/MarcGrol/shopclient/lib/myhttpclient"
	"github.com/MarcGrol/shopclient/services/shopmodel"
)

// StoreClient talks to the remote store backend. The backend is the store of
// record: it owns stock admission, pricing and order persistence.
//
//go:generate mockgen -source=api.go -package storeapi -destination client_mock.go StoreClient
type StoreClient interface {
	FetchItems(c context.Context) ([]shopmodel.Item, error)
	SubmitOrder(c context.Context, order shopmodel.OrderJSON) error
	Login(c context.Context, credentials Credentials) (Account, error)
	Register(c context.Context, registration Registration) (Account, error)
	FetchOrderHistory(c context.Context, userID int) ([]OrderSummary, error)
}

func New(baseURL string, sender myhttpclient.HTTPSender) StoreClient {
	return newClient(baseURL, sender)
}
