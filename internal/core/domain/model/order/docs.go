// Package order provides the domain model for vehicle orders (commandes).
// It implements the Order aggregate root with lifecycle management and the
// per-entity status progression the workflow operations rely on.
//
// The package includes:
//   - Order: The aggregate root holding buyer reference, vehicle specification,
//     price, and lifecycle state
//   - VehicleSpec: A value object for the ordered vehicle's characteristics
//   - Status / Flag: The etapeCommande progression and the sold/available flag
//
// Key business rules:
//   - At most one of client / company buyer references may be set
//   - Stages progress PROPOSITION -> VALIDE -> VERIFIER; dispatching and the
//     assembly cascade force VALIDE unconditionally
//   - Batch membership lasts only until the order ships in a container
package order
