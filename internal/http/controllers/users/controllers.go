// Package users contiene los controllers de /users.
package users

import svc "github.com/dropDatabas3/usergate/internal/http/services/users"

// Controllers agrupa los controllers del dominio users.
type Controllers struct {
	Accounts *AccountsController
	Records  *RecordsController
}

// NewControllers crea el agregador de controllers users.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Accounts: NewAccountsController(s.Provisioning),
		Records:  NewRecordsController(s.Records),
	}
}
