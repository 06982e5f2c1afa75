// Package queries contains the read operations of the service. Queries never
// change state; the editability query reads straight from the orders table.
package queries
