package shopper

import (
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

type service struct {
	customerStore mystore.Store[shopmodel.StoredCustomer]
	itemStore     mystore.Store[shopmodel.Item]
	storeClient   storeapi.StoreClient
	publisher     mypublisher.Publisher
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(customerStore mystore.Store[shopmodel.StoredCustomer], itemStore mystore.Store[shopmodel.Item], storeClient storeapi.StoreClient, publisher mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		customerStore: customerStore,
		itemStore:     itemStore,
		storeClient:   storeClient,
		publisher:     publisher,
		logger:        logger,
	}
}
