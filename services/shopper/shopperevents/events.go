package shopperevents

const (
	TopicName              = "shopper"
	customerRegisteredName = TopicName + ".registered"
	customerLoggedInName   = TopicName + ".loggedin"
	cartModifiedName       = TopicName + ".cartmodified"
)

type CustomerRegistered struct {
	Email string
}

func (e CustomerRegistered) GetEventTypeName() string {
	return customerRegisteredName
}

func (e CustomerRegistered) GetAggregateName() string {
	return e.Email
}

type CustomerLoggedIn struct {
	Email string
}

func (e CustomerLoggedIn) GetEventTypeName() string {
	return customerLoggedInName
}

func (e CustomerLoggedIn) GetAggregateName() string {
	return e.Email
}

type CartModified struct {
	ItemCount  int
	TotalPrice float64
}

func (e CartModified) GetEventTypeName() string {
	return cartModifiedName
}

func (e CartModified) GetAggregateName() string {
	return "cart"
}
