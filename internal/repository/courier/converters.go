package courier

import (
	"marketplace/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	var location *entities.Location
	if c.CurrentLat != nil && c.CurrentLon != nil {
		location = &entities.Location{Lat: *c.CurrentLat, Lon: *c.CurrentLon}
	}

	activeDeliveries := c.ActiveDeliveries
	if activeDeliveries == nil {
		activeDeliveries = []string{}
	}

	return &entities.Courier{
		ID:                     c.ID,
		AccountID:              c.AccountID,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Status:                 entities.CourierStatus(c.Status),
		CurrentLocation:        location,
		VerificationStatus:     entities.VerificationStatus(c.VerificationStatus),
		IsAvailableForDelivery: c.IsAvailableForDelivery,
		IsSuspended:            c.IsSuspended,
		SuspendedAt:            c.SuspendedAt,
		SuspendedBy:            c.SuspendedBy,
		SuspensionReason:       c.SuspensionReason,
		CommissionRate:         c.CommissionRate,
		ActiveDeliveries:       activeDeliveries,
		TotalDeliveries:        c.TotalDeliveries,
		TotalEarnings:          c.TotalEarnings,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
		Version:                c.Version,
	}
}

func FromDomain(c *entities.Courier) *CourierDB {
	courierDB := &CourierDB{
		ID:                     c.ID,
		AccountID:              c.AccountID,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Status:                 c.Status.String(),
		VerificationStatus:     c.VerificationStatus.String(),
		IsAvailableForDelivery: c.IsAvailableForDelivery,
		IsSuspended:            c.IsSuspended,
		CommissionRate:         c.CommissionRate,
		ActiveDeliveries:       c.ActiveDeliveries,
		TotalDeliveries:        c.TotalDeliveries,
		TotalEarnings:          c.TotalEarnings,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
		Version:                c.Version,
	}
	if courierDB.ActiveDeliveries == nil {
		courierDB.ActiveDeliveries = []string{}
	}
	if loc := c.CurrentLocation; loc != nil {
		courierDB.CurrentLat = &loc.Lat
		courierDB.CurrentLon = &loc.Lon
	}
	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
