package api

// DTOs mirror the backend's JSON contract. Dates travel as ISO-8601 strings;
// geolocation is a pair of floating-point degrees.

type Tenant struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Slug    string `json:"slug"`
	APIKey  string `json:"apiKey"`
}

type Vehicle struct {
	ID           int64  `json:"id"`
	PlateNumber  string `json:"plateNumber"`
	VIN          string `json:"vin"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	TotalMileage int64  `json:"totalMileage"`
	TenantID     int64  `json:"tenantId"`
}

type FuelAlertType int

const (
	FuelAlertLow      FuelAlertType = 0
	FuelAlertCritical FuelAlertType = 1
)

type FuelAlert struct {
	ID             int64         `json:"id"`
	VehicleID      int64         `json:"vehicleId"`
	Name           string        `json:"name"`
	ThresholdValue float64       `json:"thresholdValue"`
	AlertType      FuelAlertType `json:"alertType"`
	Triggered      bool          `json:"triggered"`
}

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Geofence struct {
	ID           int64   `json:"id"`
	VehicleID    int64   `json:"vehicleId"`
	Name         string  `json:"name"`
	Center       Point   `json:"center"`
	RadiusMeters float64 `json:"radiusMeters"`
	Triggered    bool    `json:"triggered"`
}

type GpsPosition struct {
	ID              int64    `json:"id"`
	VehicleID       int64    `json:"vehicleId"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	TimestampUTC    string   `json:"timestampUtc"`
	OdometerKm      *float64 `json:"odometerKm"`
	SpeedKph        *float64 `json:"speedKph"`
	EngineOn        *bool    `json:"engineOn"`
	FuelLevelLiters *float64 `json:"fuelLevelLiters"`
}

// Notification optionally references a tenant; TenantID is nil when the
// notification is vehicle-scoped only.
type Notification struct {
	ID           int64  `json:"id,omitempty"`
	TenantID     *int64 `json:"tenantId"`
	VehicleID    int64  `json:"vehicleId"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	IsRead       bool   `json:"isRead"`
	TimestampUTC string `json:"timestampUtc"`
}

type VehicleInsurance struct {
	ID         int64  `json:"id"`
	VehicleID  int64  `json:"vehicleId"`
	Provider   string `json:"provider"`
	ExpiryDate string `json:"expiryDate"`
}

type VehiclePart struct {
	ID                    int64  `json:"id"`
	VehicleID             int64  `json:"vehicleId"`
	Name                  string `json:"name"`
	PartNumber            string `json:"partNumber"`
	ServiceIntervalKm     int64  `json:"serviceIntervalKm"`
	LastServiceOdometerKm int64  `json:"lastServiceOdometerKm"`
	NextServiceOdometerKm int64  `json:"nextServiceOdometerKm"`
}

type VehicleTechnicalInspection struct {
	ID         int64  `json:"id"`
	VehicleID  int64  `json:"vehicleId"`
	ExpiryDate string `json:"expiryDate"`
}

type DistanceFromLastStop struct {
	VehicleID  int64   `json:"vehicleId"`
	DistanceKm float64 `json:"distanceKm"`
}
