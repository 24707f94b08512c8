// Package resource models the read side of the resource-inventory service:
// trucks, warehouses and the current tariff. These entities are owned by that
// service; this module only holds validated copies fetched per call.
package resource
