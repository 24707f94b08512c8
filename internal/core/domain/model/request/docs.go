// Package request models the transport request owned by the request service.
// This module reads requests to plan routes and pushes status changes back
// through the ports.RequestService client; it never stores them.
package request
