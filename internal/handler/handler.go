// Package handler is the first layer after the router.
//
// It binds and validates the request using the validation package and
// calls the service layer. It acts as the interface between the HTTP
// request and the export logic.
package handler
