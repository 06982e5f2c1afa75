// Package ports declares the collaborators the application layer depends on:
// order persistence behind a unit of work, the rate lookup service, the
// promotion catalog and the order event publisher.
package ports
