// Package route contains the Route aggregate and its Leg entities.
//
// A Route is created once per transport request when a Proposal is committed.
// It owns an ordered, contiguous sequence of legs; each leg is one directed hop
// between two warehouses and moves through its own lifecycle:
//
//	Estimated ──> Assigned ──> Started ──> Finished
//
// Transitions are strictly linear. A rejected transition returns a conflict
// error and leaves the leg unchanged.
//
// Proposals are transient candidates produced before commitment and are never
// persisted by themselves.
package route
