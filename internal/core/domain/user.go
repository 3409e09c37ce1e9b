package domain

import (
	"encoding/json"
	"time"
)

// Staff roles accepted by the operator-only routes.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// User is a storefront customer. ExternalAuthID correlates the record with
// the identity provider the client signs in with.
type User struct {
	ID                       string          `json:"id"`
	Email                    string          `json:"email"`
	Username                 string          `json:"username"`
	ExternalAuthID           string          `json:"externalAuthId,omitempty"`
	PaymentCustomerReference *string         `json:"paymentCustomerReference"`
	Preferences              json.RawMessage `json:"preferences,omitempty"`
	CreatedAt                time.Time       `json:"createdAt"`
}
