// Package kernel holds the shared value objects of the logistics domain:
//   - UUID: identifiers of routes, legs and of the entities owned by collaborating services
//   - Location: a validated geographic point (latitude, longitude) with great-circle distance
//   - Money: a fixed-point currency amount rounded half-up to two decimals
//
// Value objects are immutable and must be created through their constructors;
// zero values fail validation.
package kernel
