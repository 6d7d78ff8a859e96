package repo

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCaptainNotFound  = errors.New("captain not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)
