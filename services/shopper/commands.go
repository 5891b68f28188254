package shopper

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myevents"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/shopper/shopperevents"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

func (s *service) getCustomer(c context.Context) (shopmodel.Customer, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch current customer")

	return s.loadCustomer(c)
}

func (s *service) register(c context.Context, form RegistrationForm) (shopmodel.Customer, error) {
	s.logger.Log(c, form.Email, mylog.SeverityInfo, "Register %s with store backend", form.Email)

	err := form.Validate()
	if err != nil {
		return shopmodel.Customer{}, err
	}

	account, err := s.storeClient.Register(c, storeapi.Registration{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return shopmodel.Customer{}, err
	}

	return s.becomeAccount(c, account, form.Password, shopperevents.CustomerRegistered{Email: account.Email})
}

func (s *service) login(c context.Context, form LoginForm) (shopmodel.Customer, error) {
	s.logger.Log(c, form.Email, mylog.SeverityInfo, "Login %s with store backend", form.Email)

	err := form.Validate()
	if err != nil {
		return shopmodel.Customer{}, err
	}

	account, err := s.storeClient.Login(c, storeapi.Credentials{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return shopmodel.Customer{}, err
	}

	return s.becomeAccount(c, account, form.Password, shopperevents.CustomerLoggedIn{Email: account.Email})
}

// becomeAccount binds the local customer to a backend account. The cart that
// was filled before authenticating is kept.
func (s *service) becomeAccount(c context.Context, account storeapi.Account, password string, event myevents.Event) (shopmodel.Customer, error) {
	var customer shopmodel.Customer

	err := s.customerStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		customer, err = s.loadCustomer(c)
		if err != nil {
			return err
		}

		customer.ID = account.ID
		customer.Name = account.Name
		customer.Email = account.Email
		customer.Password = password

		err = s.saveCustomer(c, customer)
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, shopperevents.TopicName, event)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return shopmodel.Customer{}, err
	}

	return customer, nil
}

func (s *service) getCart(c context.Context) (shopmodel.ShoppingCart, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch current cart")

	customer, err := s.loadCustomer(c)
	if err != nil {
		return shopmodel.ShoppingCart{}, err
	}

	return customer.Cart, nil
}

func (s *service) addItemToCart(c context.Context, itemID int, quantity int) (shopmodel.ShoppingCart, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Add %d of item %d to cart", quantity, itemID)

	item, found, err := s.itemStore.Get(c, strconv.Itoa(itemID))
	if err != nil {
		return shopmodel.ShoppingCart{}, myerrors.NewInternalError(err)
	}
	if !found {
		return shopmodel.ShoppingCart{}, myerrors.NewNotFoundError(fmt.Errorf("item with id %d not found", itemID))
	}

	return s.updateCart(c, func(customer *shopmodel.Customer) {
		customer.AddToCart(&item, quantity)
	})
}

func (s *service) removeItemFromCart(c context.Context, itemID int) (shopmodel.ShoppingCart, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Remove item %d from cart", itemID)

	return s.updateCart(c, func(customer *shopmodel.Customer) {
		customer.RemoveFromCart(itemID)
	})
}

func (s *service) increaseQuantity(c context.Context, itemID int) (shopmodel.ShoppingCart, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Increase quantity of item %d", itemID)

	return s.updateCart(c, func(customer *shopmodel.Customer) {
		customer.Cart.IncreaseQuantity(itemID)
	})
}

func (s *service) decreaseQuantity(c context.Context, itemID int) (shopmodel.ShoppingCart, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Decrease quantity of item %d", itemID)

	return s.updateCart(c, func(customer *shopmodel.Customer) {
		customer.Cart.DecreaseQuantity(itemID)
	})
}

func (s *service) updateCart(c context.Context, modify func(customer *shopmodel.Customer)) (shopmodel.ShoppingCart, error) {
	var cart shopmodel.ShoppingCart

	err := s.customerStore.RunInTransaction(c, func(c context.Context) error {
		customer, err := s.loadCustomer(c)
		if err != nil {
			return err
		}

		modify(&customer)

		err = s.saveCustomer(c, customer)
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, shopperevents.TopicName, shopperevents.CartModified{
			ItemCount:  customer.Cart.ItemCount(),
			TotalPrice: customer.Cart.TotalPrice(),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		cart = customer.Cart
		return nil
	})
	if err != nil {
		return shopmodel.ShoppingCart{}, err
	}

	return cart, nil
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
