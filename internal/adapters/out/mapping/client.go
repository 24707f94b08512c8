// Package mapping is the client of the external distance-matrix provider.
package mapping

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"logistics/internal/adapters/out/restclient"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	serviceName  = "mapping-provider"
	matrixPath   = "/distancematrix/json"
	statusOK     = "OK"
	metersPerKm  = 1000.0
	defaultBurst = 1
)

var _ ports.MappingProvider = (*Client)(nil)

type Client struct {
	rest    *restclient.Client
	apiKey  string
	limiter *rate.Limiter
}

// NewClient creates a provider client that issues at most ratePerSecond calls
// per second. A non-positive rate disables limiting.
func NewClient(rest *restclient.Client, apiKey string, ratePerSecond float64) *Client {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	return &Client{
		rest:    rest,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(limit, defaultBurst),
	}
}

type matrixResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Rows         []matrixRow `json:"rows"`
}

type matrixRow struct {
	Elements []matrixElement `json:"elements"`
}

type matrixElement struct {
	Status   string     `json:"status"`
	Distance *textValue `json:"distance"`
	Duration *textValue `json:"duration"`
}

type textValue struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Distance asks the provider for the road distance from one point to another.
// A non-OK status at either the response or the element level, and a missing
// distance or duration, are reported as an unavailable provider.
func (c *Client) Distance(ctx context.Context, from kernel.Location, to kernel.Location) (ports.RoadDistance, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return ports.RoadDistance{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
	}

	query := url.Values{
		"origins":      {coordinates(from)},
		"destinations": {coordinates(to)},
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	var resp matrixResponse
	if err := c.rest.Get(ctx, matrixPath, query, &resp); err != nil {
		if restclient.IsNotFound(err) {
			return ports.RoadDistance{}, errs.NewResourceUnavailableErrorWithCause(serviceName, err)
		}
		return ports.RoadDistance{}, err
	}

	if resp.Status != statusOK {
		return ports.RoadDistance{}, invalid(fmt.Errorf("status %q: %s", resp.Status, resp.ErrorMessage))
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return ports.RoadDistance{}, invalid(fmt.Errorf("empty matrix"))
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != statusOK {
		return ports.RoadDistance{}, invalid(fmt.Errorf("element status %q", el.Status))
	}
	if el.Distance == nil || el.Duration == nil {
		return ports.RoadDistance{}, invalid(fmt.Errorf("element without distance or duration"))
	}

	return ports.RoadDistance{
		Kilometers:   el.Distance.Value / metersPerKm,
		Duration:     time.Duration(el.Duration.Value * float64(time.Second)),
		DurationText: el.Duration.Text,
	}, nil
}

func coordinates(l kernel.Location) string {
	return strconv.FormatFloat(l.Latitude(), 'f', 6, 64) + "," + strconv.FormatFloat(l.Longitude(), 'f', 6, 64)
}

func invalid(cause error) error {
	return errs.NewResourceUnavailableErrorWithCause(serviceName, cause)
}
