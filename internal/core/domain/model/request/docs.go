// Package request provides domain entities and business logic for the
// request/return lifecycle in the inventory system. It implements the Request
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Request: The aggregate root that manages request identity, properties, and lifecycle
//   - Kind: A discriminator distinguishing outgoing requests from incoming returns
//   - Status: A state machine that enforces valid status transitions per kind
//
// Key business rules:
//   - Requests must reference a college and an item, and carry a positive quantity
//   - An outgoing request follows: Pending -> Approved - Ready for Pickup ->
//     In Transit to College -> Delivered to College
//   - A return follows: Pending -> Approved - Ready for Pickup (Return) ->
//     In Transit to Inventory -> Received at Inventory
//   - Either kind may be rejected from Pending with a mandatory reason
//   - Terminal statuses (delivered, received, rejected) admit no further transitions
package request
