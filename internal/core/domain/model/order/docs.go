// Package order implements the shipment order aggregate and its mutability policy.
//
// The policy is a pure table keyed by (field, status, creator type) with default
// deny. The Order aggregate routes every field change through it, so a rejected
// edit surfaces as a *FieldIsNotEditableError naming the field, status and creator.
//
// Status follows the lifecycle in status.go: forward only, with a single retry
// loop between Delivering and FailedDelivery, and cancellation allowed only
// before pickup starts.
package order
