package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTruckLegsQueryHandler lists Assigned and Started legs of a truck, started
// legs first.
type GetTruckLegsQueryHandler struct {
	db *gorm.DB
}

func NewGetTruckLegsQueryHandler(db *gorm.DB) GetTruckLegsQueryHandler {
	return GetTruckLegsQueryHandler{db: db}
}

func (h GetTruckLegsQueryHandler) Handle(ctx context.Context, query GetTruckLegsQuery) ([]TruckLegView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+legColumns+`,
			r.request_id
		FROM legs l
		JOIN routes r ON r.id = l.route_id
		WHERE l.truck_id = ? AND l.state IN (?, ?)
		ORDER BY l.state = ? DESC, r.request_id, l.leg_order
	`,
		query.TruckID().Bytes(),
		route.StateAssigned.String(),
		route.StateStarted.String(),
		route.StateStarted.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	legs := make([]TruckLegView, 0)
	for rows.Next() {
		var requestID uuid.UUID
		leg, scanErr := scanLeg(rows, &requestID)
		if scanErr != nil {
			return nil, scanErr
		}

		id, idErr := kernel.UUIDFromBytes(requestID[:])
		if idErr != nil {
			return nil, idErr
		}
		legs = append(legs, TruckLegView{LegView: leg, RequestID: id})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return legs, nil
}
