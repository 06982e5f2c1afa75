// Package kernel holds the value objects shared across the shipment order domain:
// identifiers (UUID), currency amounts in the smallest unit (Money), parcel weight
// (Weight) and origin/destination region pairs (Route).
//
// All of them are immutable and reject invalid input in their constructors, so a
// value that passed construction can be used without re-checking.
package kernel
