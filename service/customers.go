package service

import (
	"fmt"
	"strconv"
	"strings"

	"ticketdesk/model"
)

const customerFields = 3

// ParseCustomers reads the customer file lines (id, name, password). A
// short or unparsable line aborts the load: the customer path has no
// tolerance for a corrupt identity file.
func ParseCustomers(lines []string) ([]model.Customer, error) {
	var out []model.Customer
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < customerFields {
			return nil, &FormatError{
				Line:   n + 1,
				Reason: fmt.Sprintf("customer line has %d fields, want %d", len(parts), customerFields),
			}
		}
		id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, &FormatError{Line: n + 1, Reason: "customer id is not a number"}
		}
		out = append(out, model.Customer{ID: id, Name: parts[1], Password: parts[2]})
	}
	return out, nil
}

// Authenticate looks a customer up by id and checks the password. Both
// failure modes are fatal to the load sequence.
func Authenticate(customers []model.Customer, id int, password string) (model.Customer, error) {
	for _, cust := range customers {
		if cust.ID != id {
			continue
		}
		if cust.Password != password {
			return model.Customer{}, ErrIncorrectPassword
		}
		return cust, nil
	}
	return model.Customer{}, ErrCustomerNotFound
}

// Register creates the next customer record; ids continue from the
// current size of the customer file.
func Register(customers []model.Customer, name, password string) model.Customer {
	return model.Customer{ID: len(customers) + 1, Name: name, Password: password}
}
