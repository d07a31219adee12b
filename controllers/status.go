package controllers

import (
	"errors"
	"net/http"

	"curely/services"
)

/*
* Map the service sentinels onto the wire status classes
* Unknown principal -> 404, delivery failure -> 500, rest -> 400
 */
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDelivery):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
