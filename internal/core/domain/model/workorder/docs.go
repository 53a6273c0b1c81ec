// Package workorder provides the service-order aggregate and its lifecycle
// state machine for the workshop system.
//
// The package includes:
//   - WorkOrder: the aggregate root binding a client, a vehicle, linked
//     services and materials, and the lifecycle timestamps
//   - Status: the nine-value status enumeration with per-operation guards
//   - Patch: the typed partial update applied by the persistence gateway
//   - Representation: the external mapping that converts minor-unit prices
//     to decimal major units and computes billing totals
//
// Key business rules:
//   - New orders always start in RECEIVED
//   - Approval and disapproval are only legal from AWAITING_APPROVAL
//   - Closed orders (FINISHED, CANCELLED, REJECTED, DELIVERED) cannot receive
//     new services or materials
//   - Links can only be removed while the order is RECEIVED or AWAITING_APPROVAL
//   - The generic status update accepts any valid target status; it shares no
//     code with the strict approval guards by design
package workorder
