package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myhttpclient"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/services/shopmodel"
)

type client struct {
	baseURL string
	sender  myhttpclient.HTTPSender
	logger  mylog.Logger
}

func newClient(baseURL string, sender myhttpclient.HTTPSender) *client {
	return &client{
		baseURL: baseURL,
		sender:  sender,
		logger:  mylog.New("storeapi"),
	}
}

type itemListResponse struct {
	Items []json.RawMessage `json:"items"`
}

func (cl client) FetchItems(c context.Context) ([]shopmodel.Item, error) {
	httpStatus, respPayload, err := cl.sender.Send(c, http.MethodGet, cl.baseURL+"/items", nil)
	if err != nil {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error fetching items: %s", err))
	}
	if !isSuccess(httpStatus) {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error fetching items: http status %d", httpStatus))
	}

	resp := itemListResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing item-list response: %s", err))
	}

	items := make([]shopmodel.Item, 0, len(resp.Items))
	for _, raw := range resp.Items {
		item, err := shopmodel.ItemFromJSON(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

type checkoutResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func (cl client) SubmitOrder(c context.Context, order shopmodel.OrderJSON) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error marshalling order: %s", err))
	}

	httpStatus, respPayload, err := cl.sender.Send(c, http.MethodPost, cl.baseURL+"/checkout", payload)
	if err != nil {
		return myerrors.NewUnavailableError(fmt.Errorf("error submitting order: %s", err))
	}

	resp := checkoutResponse{}
	// a failure body is informative but optional
	json.Unmarshal(respPayload, &resp)

	if !isSuccess(httpStatus) {
		return myerrors.NewUnavailableError(fmt.Errorf("error submitting order: http status %d: %s", httpStatus, resp.Detail))
	}

	// The backend also rejects orders with a 200 and an error in the body
	if resp.Error != "" {
		return myerrors.NewInvalidInputErrorf("order rejected: %s", resp.Error)
	}

	return nil
}

type authFailureResponse struct {
	Detail string `json:"detail"`
}

func (cl client) Login(c context.Context, credentials Credentials) (Account, error) {
	return cl.authenticate(c, "/login", credentials)
}

func (cl client) Register(c context.Context, registration Registration) (Account, error) {
	return cl.authenticate(c, "/register", registration)
}

func (cl client) authenticate(c context.Context, path string, request any) (Account, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return Account{}, myerrors.NewInternalError(fmt.Errorf("error marshalling auth request: %s", err))
	}

	httpStatus, respPayload, err := cl.sender.Send(c, http.MethodPost, cl.baseURL+path, payload)
	if err != nil {
		return Account{}, myerrors.NewUnavailableError(fmt.Errorf("error calling %s: %s", path, err))
	}
	if !isSuccess(httpStatus) {
		failure := authFailureResponse{}
		json.Unmarshal(respPayload, &failure)
		return Account{}, myerrors.NewAuthenticationError(fmt.Errorf("%s failed: %s", path, failure.Detail))
	}

	account := Account{}
	err = json.Unmarshal(respPayload, &account)
	if err != nil {
		return Account{}, myerrors.NewInternalError(fmt.Errorf("error parsing auth response: %s", err))
	}

	return account, nil
}

type orderHistoryResponse struct {
	Orders []OrderSummary `json:"orders"`
}

func (cl client) FetchOrderHistory(c context.Context, userID int) ([]OrderSummary, error) {
	url := fmt.Sprintf("%s/orders/%d", cl.baseURL, userID)

	httpStatus, respPayload, err := cl.sender.Send(c, http.MethodGet, url, nil)
	if err != nil {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error fetching order history: %s", err))
	}
	if !isSuccess(httpStatus) {
		return nil, myerrors.NewUnavailableError(fmt.Errorf("error fetching order history: http status %d", httpStatus))
	}

	resp := orderHistoryResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing order-history response: %s", err))
	}

	return resp.Orders, nil
}

func isSuccess(httpStatus int) bool {
	return httpStatus >= 200 && httpStatus < 300
}
