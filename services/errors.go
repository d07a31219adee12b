package services

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrDelivery = errors.New("failed to send otp email")
)
