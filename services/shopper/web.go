package shopper

import (
	"context"
	"net/http"
	"strconv"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopclient/lib/mycontext"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myhttp"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/lib/mypublisher"
	"github.com/MarcGrol/shopclient/lib/mystore"
	"github.com/MarcGrol/shopclient/services/shopmodel"
	"github.com/MarcGrol/shopclient/services/shopper/shopperevents"
	"github.com/MarcGrol/shopclient/services/storeapi"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewService(customerStore mystore.Store[shopmodel.StoredCustomer], itemStore mystore.Store[shopmodel.Item], storeClient storeapi.StoreClient, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("shopper")
	return &webService{
		logger:  logger,
		service: newService(customerStore, itemStore, storeClient, publisher, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/shopper/register", s.registerPage()).Methods("POST")
	router.HandleFunc("/api/shopper/login", s.loginPage()).Methods("POST")
	router.HandleFunc("/api/shopper", s.customerPage()).Methods("GET")
	router.HandleFunc("/api/cart", s.cartPage()).Methods("GET")
	router.HandleFunc("/api/cart/items", s.addToCartPage()).Methods("POST")
	router.HandleFunc("/api/cart/items/{itemID}", s.removeFromCartPage()).Methods("DELETE")
	router.HandleFunc("/api/cart/items/{itemID}/increase", s.increasePage()).Methods("PUT")
	router.HandleFunc("/api/cart/items/{itemID}/decrease", s.decreasePage()).Methods("PUT")

	err := s.service.publisher.CreateTopic(c, shopperevents.TopicName)
	if err != nil {
		return err
	}

	return nil
}

// customerResponse is the customer without the password and with the cart
// flattened the way the frontend expects it.
type customerResponse struct {
	ID    int                       `json:"id"`
	Name  string                    `json:"name"`
	Email string                    `json:"email"`
	Cart  []shopmodel.CartEntryJSON `json:"cart"`
}

func newCustomerResponse(customer shopmodel.Customer) customerResponse {
	return customerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Cart:  customer.Cart.ToJSON(),
	}
}

type cartResponse struct {
	Items      []shopmodel.CartEntryJSON `json:"items"`
	TotalPrice float64                   `json:"totalPrice"`
}

func newCartResponse(cart shopmodel.ShoppingCart) cartResponse {
	return cartResponse{
		Items:      cart.ToJSON(),
		TotalPrice: cart.TotalPrice(),
	}
}

func (s *webService) registerPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		form, err := formFromRequest[RegistrationForm](r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		customer, err := s.service.register(c, form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCustomerResponse(customer))
	}
}

func (s *webService) loginPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		form, err := formFromRequest[LoginForm](r)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		customer, err := s.service.login(c, form)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCustomerResponse(customer))
	}
}

func (s *webService) customerPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		customer, err := s.service.getCustomer(c)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCustomerResponse(customer))
	}
}

func (s *webService) cartPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		cart, err := s.service.getCart(c)
		if err != nil {
			errorWriter.WriteError(c, w, 6, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) addToCartPage() http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		form, err := formFromRequest[AddToCartForm](r)
		if err != nil {
			errorWriter.WriteError(c, w, 7, err)
			return
		}
		if form.Quantity == 0 {
			form.Quantity = 1
		}

		err = form.Validate()
		if err != nil {
			errorWriter.WriteError(c, w, 8, err)
			return
		}

		cart, err := s.service.addItemToCart(c, form.ItemID, form.Quantity)
		if err != nil {
			errorWriter.WriteError(c, w, 9, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func (s *webService) removeFromCartPage() http.HandlerFunc {
	return s.cartItemPage(func(c context.Context, itemID int) (shopmodel.ShoppingCart, error) {
		return s.service.removeItemFromCart(c, itemID)
	})
}

func (s *webService) increasePage() http.HandlerFunc {
	return s.cartItemPage(func(c context.Context, itemID int) (shopmodel.ShoppingCart, error) {
		return s.service.increaseQuantity(c, itemID)
	})
}

func (s *webService) decreasePage() http.HandlerFunc {
	return s.cartItemPage(func(c context.Context, itemID int) (shopmodel.ShoppingCart, error) {
		return s.service.decreaseQuantity(c, itemID)
	})
}

func (s *webService) cartItemPage(op func(c context.Context, itemID int) (shopmodel.ShoppingCart, error)) http.HandlerFunc {
	errorWriter := myhttp.NewWriter(s.logger)
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		itemID, err := strconv.Atoi(mux.Vars(r)["itemID"])
		if err != nil {
			errorWriter.WriteError(c, w, 10, myerrors.NewInvalidInputErrorf("item id must be numeric"))
			return
		}

		cart, err := op(c, itemID)
		if err != nil {
			errorWriter.WriteError(c, w, 11, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartResponse(cart))
	}
}

func formFromRequest[T any](r *http.Request) (T, error) {
	var form T

	err := r.ParseForm()
	if err != nil {
		return form, myerrors.NewInvalidInputError(err)
	}

	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return form, myerrors.NewInvalidInputErrorf("error decoding form: %s", err)
	}

	return form, nil
}
