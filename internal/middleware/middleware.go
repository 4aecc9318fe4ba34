// Package middleware stores the global middleware of the echo router.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request-scoped logging, metrics, panic recovery and the
// final error funnel that turns every failure into one JSON body.
package middleware
