package checkout

import (
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/lib/mytime"
	"github.com/MarcGrol/shopclient/lib/myuuid"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

type service struct {
	customerStore mystore.Store[shopmodel.StoredCustomer]
	storeClient   storeapi.StoreClient
	publisher     mypublisher.Publisher
	nower         mytime.Nower
	uuider        myuuid.UUIDer
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(customerStore mystore.Store[shopmodel.StoredCustomer], storeClient storeapi.StoreClient, nower mytime.Nower, uuider myuuid.UUIDer, publisher mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		customerStore: customerStore,
		storeClient:   storeClient,
		publisher:     publisher,
		nower:         nower,
		uuider:        uuider,
		logger:        logger,
	}
}
