// Package promotion models the promotion eligibility table: read-only discount
// rules loaded from the promotion catalog and evaluated by the cost composer.
//
// A Rule carries its discount shape (fixed amount or percentage), an optional cap
// and the minimum service fee that qualifies for it. Rules are never mutated by
// the order flow; administration of promotions lives elsewhere.
package promotion
