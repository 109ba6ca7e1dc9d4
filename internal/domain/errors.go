package domain

import "errors"

var (
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrWebhookEventNotFound = errors.New("webhook event not found")
)

var (
	ErrCheckoutWrongStatus  = errors.New("checkout not allowed: ticket is not approved")
	ErrCheckoutMissingPrice = errors.New("checkout not allowed: ticket has no price")
	ErrCheckoutInvalidPrice = errors.New("checkout not allowed: price must be a positive amount")
)

var (
	ErrMissingExpectedAmount = errors.New("ticket has no expected amount recorded")
	ErrAmountMismatch        = errors.New("paid amount does not match ticket price")
	ErrCurrencyMismatch      = errors.New("paid currency does not match ticket currency")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
