// Package services holds stateless domain services.
//
// CostComposer turns a base shipping fee, the order's cost inputs and an optional
// promotion into a cost.Breakdown. It performs no I/O: the base fee comes from the
// rate lookup port and the promotion from the promotion catalog port, both
// resolved by the application layer.
package services
