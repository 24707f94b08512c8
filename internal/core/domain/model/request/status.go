package request

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a transport request as seen by the request service.
//
//	Draft ──> Scheduled ──> InTransit ──> Delivered
type Status int

const (
	StatusUnknown Status = iota
	StatusDraft
	StatusScheduled
	StatusInTransit
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusDraft:     "DRAFT",
		StatusScheduled: "SCHEDULED",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
	}
}

// ParseStatus maps the request service's wire value to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid request status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
