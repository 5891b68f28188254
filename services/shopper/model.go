package shopper

import (
	"regexp"
	"strings"

	"github.com/MarcGrol/shopclient/lib/myerrors"
)

// Same check the web frontend uses: something before and after the @ and a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegistrationForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f RegistrationForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 2 {
		return myerrors.NewInvalidInputErrorf("name must be at least 2 characters")
	}
	if !emailPattern.MatchString(f.Email) {
		return myerrors.NewInvalidInputErrorf("email address %s is invalid", f.Email)
	}
	if len(f.Password) < 6 {
		return myerrors.NewInvalidInputErrorf("password must be at least 6 characters")
	}
	return nil
}

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f LoginForm) Validate() error {
	if !emailPattern.MatchString(f.Email) {
		return myerrors.NewInvalidInputErrorf("email address %s is invalid", f.Email)
	}
	if f.Password == "" {
		return myerrors.NewInvalidInputErrorf("password is required")
	}
	return nil
}

type AddToCartForm struct {
	ItemID   int `form:"itemId"`
	Quantity int `form:"quantity"`
}

func (f AddToCartForm) Validate() error {
	if f.ItemID <= 0 {
		return myerrors.NewInvalidInputErrorf("itemId is required")
	}
	if f.Quantity < 0 {
		return myerrors.NewInvalidInputErrorf("quantity cannot be negative")
	}
	return nil
}
