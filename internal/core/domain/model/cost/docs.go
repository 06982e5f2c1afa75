// Package cost holds the inputs and output of a shipment cost computation.
//
// Inputs mirror an order form that may still be incomplete: a zero weight means
// "not provided yet" and yields a zeroed Breakdown rather than an error. Negative
// amounts are invalid input. Breakdown is a pure function result with no identity.
package cost
