// Package bqerr classifies errors returned by the BigQuery client.
//
// It maps googleapi reasons and HTTP codes into a small Code enum so logs
// and alerts can tell a missing table from a quota problem. Clients never
// see the result: every warehouse failure still answers 500.
package bqerr
