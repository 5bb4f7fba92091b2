package model

// Customer is one row of the customer file.
type Customer struct {
	ID       int
	Name     string
	Password string
}
