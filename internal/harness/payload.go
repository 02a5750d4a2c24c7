package harness

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
)

const tagAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// uniqueTag returns a run-unique marker for names, slugs, and plate numbers:
// millisecond timestamp plus five random characters.
func uniqueTag() string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = tagAlphabet[rand.IntN(len(tagAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), b)
}

func NewTenantPayload() api.Tenant {
	tag := uniqueTag()
	return api.Tenant{
		Name:    "Test Tenant " + tag,
		Address: "123 Test St " + tag,
		Slug:    "test-tenant-" + tag,
		APIKey:  uuid.NewString(),
	}
}

func NewVehiclePayload(tenantID int64) api.Vehicle {
	tag := uniqueTag()
	vin := "VIN" + tag
	if len(vin) > 17 {
		vin = vin[:17]
	}
	return api.Vehicle{
		PlateNumber:  "TEST-" + tag,
		VIN:          vin,
		Make:         "TestMake",
		Model:        "TestModel",
		Year:         2024,
		TotalMileage: 10000,
		TenantID:     tenantID,
	}
}

func NewFuelAlertPayload(vehicleID int64) api.FuelAlert {
	return api.FuelAlert{
		VehicleID:      vehicleID,
		Name:           "Fuel Alert " + uniqueTag(),
		ThresholdValue: 15,
		AlertType:      api.FuelAlertLow,
	}
}

func NewGeofencePayload(vehicleID int64) api.Geofence {
	return api.Geofence{
		VehicleID:    vehicleID,
		Name:         "Geofence " + uniqueTag(),
		Center:       api.Point{Latitude: 40.1772, Longitude: 44.5035},
		RadiusMeters: 500,
	}
}

func NewGpsPositionPayload(vehicleID int64) api.GpsPosition {
	odometer := 10000 + float64(rand.IntN(100))
	speed := 60.0
	engineOn := true
	fuel := 45.0
	return api.GpsPosition{
		VehicleID:       vehicleID,
		Latitude:        40.1772 + rand.Float64()*0.01,
		Longitude:       44.5035 + rand.Float64()*0.01,
		TimestampUTC:    time.Now().UTC().Format(time.RFC3339),
		OdometerKm:      &odometer,
		SpeedKph:        &speed,
		EngineOn:        &engineOn,
		FuelLevelLiters: &fuel,
	}
}

func NewNotificationPayload(tenantID, vehicleID int64) api.Notification {
	return api.Notification{
		TenantID:     &tenantID,
		VehicleID:    vehicleID,
		Title:        "Notification " + uniqueTag(),
		Message:      "Test message " + uniqueTag(),
		TimestampUTC: time.Now().UTC().Format(time.RFC3339),
	}
}

func NewVehicleInsurancePayload(vehicleID int64) api.VehicleInsurance {
	return api.VehicleInsurance{
		VehicleID:  vehicleID,
		Provider:   "Insurance Co " + uniqueTag(),
		ExpiryDate: "2026-12-31",
	}
}

func NewVehiclePartPayload(vehicleID int64) api.VehiclePart {
	return api.VehiclePart{
		VehicleID:             vehicleID,
		Name:                  "Part " + uniqueTag(),
		PartNumber:            "PN-" + uniqueTag(),
		ServiceIntervalKm:     10000,
		LastServiceOdometerKm: 5000,
		NextServiceOdometerKm: 15000,
	}
}

func NewVehicleTechnicalInspectionPayload(vehicleID int64) api.VehicleTechnicalInspection {
	return api.VehicleTechnicalInspection{
		VehicleID:  vehicleID,
		ExpiryDate: "2026-12-31",
	}
}
