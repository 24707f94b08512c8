package routerepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRouteRepository implements ports.RouteRepository using GORM. Duplicate
// key detection relies on gorm.Config.TranslateError.
type GormRouteRepository struct {
	db *gorm.DB
}

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add inserts the route and its legs.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"route",
				fmt.Sprintf("request %s already has a route", aggregate.RequestID()),
				err,
			)
		}
		return err
	}
	return nil
}

// UpdateLeg writes the lifecycle columns of a leg only if the row is still in
// the previous state.
func (r *GormRouteRepository) UpdateLeg(ctx context.Context, leg *route.Leg, previous route.State) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	dto := legFromDomain(uuid.Nil, leg)

	result := r.db.WithContext(ctx).
		Model(&LegDTO{}).
		Where("id = ? AND state = ?", dto.ID, previous.String()).
		Select("state", "truck_id", "started_at", "finished_at", "real_cost", "real_duration").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError(
			"leg",
			fmt.Sprintf("leg %s is no longer in state %s", leg.ID(), previous),
		)
	}
	return nil
}

// Get retrieves a route by ID with its legs in order.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "routeId", id, "id = ?", id.Bytes())
}

// GetByRequest retrieves the route committed for requestID.
func (r *GormRouteRepository) GetByRequest(ctx context.Context, requestID kernel.UUID) (*route.Route, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "requestId", requestID, "request_id = ?", requestID.Bytes())
}

// GetByLeg retrieves the route owning legID.
func (r *GormRouteRepository) GetByLeg(ctx context.Context, legID kernel.UUID) (*route.Route, error) {
	if err := legID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "legId", legID, "id = (SELECT route_id FROM legs WHERE id = ?)", legID.Bytes())
}

// GetByLegForUpdate retrieves the route owning legID and holds a row lock on
// it. Every leg transition goes through this lock.
func (r *GormRouteRepository) GetByLegForUpdate(ctx context.Context, legID kernel.UUID) (*route.Route, error) {
	if err := legID.Validate(); err != nil {
		return nil, err
	}
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.first(db, "legId", legID, "id = (SELECT route_id FROM legs WHERE id = ?)", legID.Bytes())
}

// LockTruck takes a transaction scoped advisory lock keyed by the truck id.
func (r *GormRouteRepository) LockTruck(ctx context.Context, truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", truckID.String()).Error
}

// IsTruckBusy reports whether truckID holds an Assigned or Started leg.
func (r *GormRouteRepository) IsTruckBusy(ctx context.Context, truckID kernel.UUID) (bool, error) {
	if err := truckID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LegDTO{}).
		Where("truck_id = ? AND state IN ?", truckID.Bytes(), []string{
			route.StateAssigned.String(),
			route.StateStarted.String(),
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRouteRepository) first(db *gorm.DB, param string, id kernel.UUID, query string, args ...any) (*route.Route, error) {
	var dto RouteDTO
	err := db.
		Preload("Legs", func(tx *gorm.DB) *gorm.DB { return tx.Order("leg_order") }).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
