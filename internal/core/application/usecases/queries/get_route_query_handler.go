package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRouteQueryHandler reads a route and its legs with plain SQL.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	var (
		resp              GetRouteQueryResponse
		id                uuid.UUID
		estimatedCost     decimal.Decimal
		estimatedDuration int64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.warehouse_count,
			r.estimated_cost,
			r.estimated_duration,
			(SELECT COUNT(*) FROM legs l WHERE l.route_id = r.id)
		FROM routes r
		WHERE r.request_id = ?
	`, query.RequestID().Bytes()).Row()
	err := row.Scan(&id, &resp.WarehouseCount, &estimatedCost, &estimatedDuration, &resp.LegCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRouteQueryResponse{}, errs.NewObjectNotFoundError("requestId", query.RequestID().String())
		}
		return GetRouteQueryResponse{}, err
	}

	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetRouteQueryResponse{}, err
	}
	resp.ID = routeID
	resp.RequestID = query.RequestID()
	resp.EstimatedCost = kernel.NewMoney(estimatedCost)
	resp.EstimatedDuration = time.Duration(estimatedDuration)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+legColumns+`
		FROM legs l
		WHERE l.route_id = ?
		ORDER BY l.leg_order
	`, id).Rows()
	if err != nil {
		return GetRouteQueryResponse{}, err
	}
	defer rows.Close()

	resp.Legs = make([]LegView, 0, resp.LegCount)
	for rows.Next() {
		leg, scanErr := scanLeg(rows)
		if scanErr != nil {
			return GetRouteQueryResponse{}, scanErr
		}
		resp.Legs = append(resp.Legs, leg)
	}
	if err = rows.Err(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	return resp, nil
}
