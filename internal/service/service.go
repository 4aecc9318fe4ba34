// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives the
// validated look-back window from the handler and asks the repository
// for the matching events.
package service
