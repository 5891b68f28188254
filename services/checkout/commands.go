package checkout

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/services/checkout/checkoutevents"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

// checkout submits the current cart as an order. The cart is only replaced
// after the backend has confirmed the order: a failed submission leaves the
// cart exactly as it was.
func (s *service) checkout(c context.Context) (string, shopmodel.CheckoutSnapshot, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Checkout current cart")

	customer, err := s.loadCustomer(c)
	if err != nil {
		return "", shopmodel.CheckoutSnapshot{}, err
	}
	if customer.Cart.IsEmpty() {
		return "", shopmodel.CheckoutSnapshot{}, myerrors.NewInvalidInputErrorf("cart is empty")
	}

	order := shopmodel.NewOrderFromCart(customer, s.nower.Now())

	err = s.storeClient.SubmitOrder(c, order.ToJSON())
	if err != nil {
		return "", shopmodel.CheckoutSnapshot{}, err
	}

	orderUID := s.uuider.Create()

	var snapshot shopmodel.CheckoutSnapshot
	err = s.customerStore.RunInTransaction(c, func(c context.Context) error {
		customer, err := s.loadCustomer(c)
		if err != nil {
			return err
		}

		snapshot = customer.Checkout()

		err = s.saveCustomer(c, customer)
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.CheckoutCompleted{
			OrderUID:  orderUID,
			UserID:    customer.ID,
			Total:     snapshot.Total,
			ItemCount: len(snapshot.Entries),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return "", shopmodel.CheckoutSnapshot{}, err
	}

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Order %s confirmed for a total of %.2f", orderUID, snapshot.Total)

	return orderUID, snapshot, nil
}

func (s *service) listOrders(c context.Context) ([]storeapi.OrderSummary, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch order history")

	customer, err := s.loadCustomer(c)
	if err != nil {
		return nil, err
	}
	if customer.IsAnonymous() {
		return nil, myerrors.NewAuthenticationError(fmt.Errorf("order history requires a registered customer"))
	}

	return s.storeClient.FetchOrderHistory(c, customer.ID)
}

func (s *service) loadCustomer(c context.Context) (shopmodel.Customer, error) {
	stored, found, err := s.customerStore.Get(c, shopmodel.CurrentCustomerKey)
	if err != nil {
		return shopmodel.Customer{}, myerrors.NewInternalError(err)
	}
	if !found {
		return shopmodel.NewCustomer(), nil
	}

	return stored.Customer(), nil
}

func (s *service) saveCustomer(c context.Context, customer shopmodel.Customer) error {
	stored, err := customer.Stored()
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.customerStore.Put(c, shopmodel.CurrentCustomerKey, stored)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}
