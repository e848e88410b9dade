// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and runner assignment.
type OrderDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderNumber      string      `gorm:"uniqueIndex"`
	BuyerID          uuid.UUID   `gorm:"type:uuid;index"`
	SellerID         uuid.UUID   `gorm:"type:uuid;index"`
	RunnerID         *uuid.UUID  `gorm:"type:uuid;index"`
	Fulfillment      int         `gorm:"type:smallint"`
	DeliveryType     int         `gorm:"type:smallint"`
	Status           int         `gorm:"index"`
	PickupAddress    string
	Pickup           GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	DropoffAddress   *string
	DropoffLat       *float64
	DropoffLng       *float64
	SubtotalCents    int64
	TaxCents         int64
	DeliveryFeeCents int64
	TotalCents       int64
	EstimatedMinutes *int
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded geographic coordinates within the order table.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

// StatusEventDTO represents the database structure for the append-only order
// timeline. Rows are written once per committed transition and never updated.
type StatusEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Message   string
	ActorID   uuid.UUID `gorm:"type:uuid"`
	ActorRole int       `gorm:"type:smallint"`
	CreatedAt time.Time
}

// TableName specifies the database table name for status event entities.
func (StatusEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional runner assignment and dropoff.
func fromDomain(aggregate *order.Order) OrderDTO {
	var runnerID *uuid.UUID
	if id := aggregate.RunnerID(); id != nil {
		raw := id.Bytes()
		runnerID = &raw
	}

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		BuyerID:       aggregate.BuyerID().Bytes(),
		SellerID:      aggregate.SellerID().Bytes(),
		RunnerID:      runnerID,
		Fulfillment:   int(aggregate.Fulfillment()),
		DeliveryType:  int(aggregate.DeliveryType()),
		Status:        int(aggregate.Status()),
		PickupAddress: aggregate.Pickup().Address(),
		Pickup: GeoPointDTO{
			Lat: aggregate.Pickup().Point().Lat(),
			Lng: aggregate.Pickup().Point().Lng(),
		},
		SubtotalCents:    aggregate.Pricing().Subtotal().Cents(),
		TaxCents:         aggregate.Pricing().Tax().Cents(),
		DeliveryFeeCents: aggregate.Pricing().DeliveryFee().Cents(),
		TotalCents:       aggregate.Pricing().Total().Cents(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		CreatedAt:        aggregate.CreatedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		PickedUpAt:       aggregate.PickedUpAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}

	if dropoff := aggregate.Dropoff(); dropoff != nil {
		address := dropoff.Address()
		lat := dropoff.Point().Lat()
		lng := dropoff.Point().Lng()
		dto.DropoffAddress = &address
		dto.DropoffLat = &lat
		dto.DropoffLng = &lng
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, runner assignment and
// lifecycle timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var runnerID *kernel.UUID
	if dto.RunnerID != nil {
		rID, runnerErr := kernel.UUIDFromBytes((*dto.RunnerID)[:])
		if runnerErr != nil {
			return nil, runnerErr
		}

		runnerID = &rID
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}

	pickup, err := order.NewWaypoint(dto.PickupAddress, pickupPoint)
	if err != nil {
		return nil, err
	}

	var dropoff *order.Waypoint
	if dto.DropoffAddress != nil && dto.DropoffLat != nil && dto.DropoffLng != nil {
		dropoffPoint, pointErr := kernel.NewGeoPoint(*dto.DropoffLat, *dto.DropoffLng)
		if pointErr != nil {
			return nil, pointErr
		}

		wp, wpErr := order.NewWaypoint(*dto.DropoffAddress, dropoffPoint)
		if wpErr != nil {
			return nil, wpErr
		}

		dropoff = &wp
	}

	pricing, err := pricingToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		buyerID,
		sellerID,
		runnerID,
		order.Fulfillment(dto.Fulfillment),
		order.DeliveryType(dto.DeliveryType),
		order.Status(dto.Status),
		pickup,
		dropoff,
		pricing,
		dto.EstimatedMinutes,
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
	)
}

func pricingToDomain(dto OrderDTO) (order.Pricing, error) {
	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return order.Pricing{}, err
	}

	tax, err := kernel.NewMoney(dto.TaxCents)
	if err != nil {
		return order.Pricing{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFeeCents)
	if err != nil {
		return order.Pricing{}, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.NewPricing(subtotal, tax, deliveryFee, total)
}

// eventFromDomain converts a status event to its database representation.
func eventFromDomain(event order.StatusEvent) StatusEventDTO {
	return StatusEventDTO{
		ID:        event.ID().Bytes(),
		OrderID:   event.OrderID().Bytes(),
		Status:    int(event.Status()),
		Message:   event.Message(),
		ActorID:   event.ActorID().Bytes(),
		ActorRole: int(event.ActorRole()),
		CreatedAt: event.CreatedAt(),
	}
}

// eventToDomain converts a database DTO to a status event value object.
func eventToDomain(dto StatusEventDTO) (order.StatusEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusEvent{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusEvent{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.StatusEvent{}, err
	}

	return order.RestoreStatusEvent(
		id,
		orderID,
		order.Status(dto.Status),
		dto.Message,
		actorID,
		order.ActorRole(dto.ActorRole),
		dto.CreatedAt,
	)
}
