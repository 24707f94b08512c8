// Package notification models the outbox of best-effort state pushes to the
// resource and request services.
//
// A Notification is written in the same transaction as the local state change
// that caused it and delivered after commit. Delivery failure never affects the
// local change; it is recorded on the notification instead.
package notification
