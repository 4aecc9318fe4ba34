// Package repository handles all interactions with the warehouse.
//
// It contains the export query and the mapping from BigQuery rows to
// model.Event, abstracting BigQuery away from the service layer.
package repository
