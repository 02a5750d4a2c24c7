// Package apitest provides an in-memory double of the vehicle-tracking
// backend for tests. It implements the REST contract the client and the
// harness consume: CRUD per resource, parent-filtered reads, geofence
// point-containment, GPS distance queries, fuel level, last position, and
// the notification sample endpoints. Status codes mirror the real backend:
// 201 on create, 204 on bodyless mutations, 404 for unknown ids, 400 for
// create payloads missing required fields.
package apitest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
)

// Server holds all resources in memory, guarded by one mutex. Ids are
// assigned from a single sequence across resource kinds.
type Server struct {
	mu     sync.Mutex
	nextID int64

	tenants       map[int64]api.Tenant
	vehicles      map[int64]api.Vehicle
	fuelAlerts    map[int64]api.FuelAlert
	geofences     map[int64]api.Geofence
	positions     map[int64]api.GpsPosition
	positionOrder []int64
	notifications map[int64]api.Notification
	insurances    map[int64]api.VehicleInsurance
	parts         map[int64]api.VehiclePart
	inspections   map[int64]api.VehicleTechnicalInspection

	http *httptest.Server
}

// New starts the double on a random local port. Callers own Close.
func New() *Server {
	s := &Server{
		tenants:       map[int64]api.Tenant{},
		vehicles:      map[int64]api.Vehicle{},
		fuelAlerts:    map[int64]api.FuelAlert{},
		geofences:     map[int64]api.Geofence{},
		positions:     map[int64]api.GpsPosition{},
		notifications: map[int64]api.Notification{},
		insurances:    map[int64]api.VehicleInsurance{},
		parts:         map[int64]api.VehiclePart{},
		inspections:   map[int64]api.VehicleTechnicalInspection{},
	}
	s.http = httptest.NewServer(s.router())
	return s
}

func (s *Server) URL() string { return s.http.URL }

func (s *Server) Close() { s.http.Close() }

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/Tenants", func(r chi.Router) {
		r.Get("/", s.listTenants)
		r.Post("/", s.createTenant)
		r.Get("/{id}", s.getTenant)
		r.Put("/{id}", s.updateTenant)
		r.Delete("/{id}", s.deleteTenant)
	})

	r.Route("/api/Vehicles", func(r chi.Router) {
		r.Get("/", s.listVehicles)
		r.Post("/", s.createVehicle)
		r.Get("/tenant/{tenantId}", s.vehiclesByTenant)
		r.Get("/fuel-level/{id}", s.fuelLevel)
		r.Get("/{id}/last-position", s.lastPosition)
		r.Get("/{id}", s.getVehicle)
		r.Put("/{id}", s.updateVehicle)
		r.Delete("/{id}", s.deleteVehicle)
	})

	r.Route("/api/FuelAlerts", func(r chi.Router) {
		r.Post("/", s.createFuelAlert)
		r.Get("/vehicle/{vehicleId}", s.fuelAlertsByVehicle)
		r.Get("/{id}", s.getFuelAlert)
		r.Put("/{id}", s.updateFuelAlert)
		r.Delete("/{id}", s.deleteFuelAlert)
	})

	r.Route("/api/Geofences", func(r chi.Router) {
		r.Get("/", s.listGeofences)
		r.Post("/", s.createGeofence)
		r.Get("/contains", s.geofencesContaining)
		r.Get("/vehicle/{vehicleId}", s.geofencesByVehicle)
		r.Get("/{id}", s.getGeofence)
		r.Put("/{id}", s.updateGeofence)
		r.Delete("/{id}", s.deleteGeofence)
	})

	r.Route("/api/GpsPositions", func(r chi.Router) {
		r.Post("/", s.createPosition)
		r.Get("/distance", s.distance)
		r.Get("/distance-from-last-stop", s.distanceFromLastStop)
	})

	r.Route("/api/Notifications", func(r chi.Router) {
		r.Get("/", s.listNotifications)
		r.Post("/sample", s.createSampleNotification)
		r.Post("/sample/{tenantId}/{vehicleId}", s.createSampleNotificationFor)
		r.Get("/tenant/{tenantId}", s.notificationsByTenant)
		r.Get("/vehicle/{vehicleId}", s.notificationsByVehicle)
		r.Get("/{id}", s.getNotification)
		r.Put("/{id}/mark-as-read", s.markNotificationRead)
	})

	r.Route("/api/VehicleInsurances", func(r chi.Router) {
		r.Get("/", s.listInsurances)
		r.Post("/", s.createInsurance)
		r.Get("/vehicle/{vehicleId}", s.insurancesByVehicle)
		r.Get("/{id}", s.getInsurance)
		r.Put("/{id}", s.updateInsurance)
		r.Delete("/{id}", s.deleteInsurance)
	})

	r.Route("/api/VehicleParts", func(r chi.Router) {
		r.Get("/", s.listParts)
		r.Post("/", s.createPart)
		r.Get("/vehicle/{vehicleId}", s.partsByVehicle)
		r.Get("/{id}", s.getPart)
		r.Put("/{id}", s.updatePart)
		r.Delete("/{id}", s.deletePart)
	})

	r.Route("/api/VehicleTechnicalInspections", func(r chi.Router) {
		r.Get("/", s.listInspections)
		r.Post("/", s.createInspection)
		r.Get("/vehicle/{vehicleId}", s.inspectionsByVehicle)
		r.Get("/{id}", s.getInspection)
		r.Put("/{id}", s.updateInspection)
		r.Delete("/{id}", s.deleteInspection)
	})

	return r
}

/*************
 * helpers
 *************/

func idParam(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, title string) {
	writeJSON(w, status, map[string]any{"status": status, "title": title})
}

func readBody[T any](w http.ResponseWriter, r *http.Request, v *T) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeProblem(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}

// haversineMeters returns the great-circle distance between two points.
func haversineMeters(a, b api.Point) float64 {
	const earthRadiusM = 6371000.0
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

/*************
 * tenants
 *************/

func (s *Server) listTenants(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createTenant(w http.ResponseWriter, r *http.Request) {
	var t api.Tenant
	if !readBody(w, r, &t) {
		return
	}
	if t.Name == "" || t.Slug == "" {
		writeProblem(w, http.StatusBadRequest, "name and slug are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t.ID = s.nextID
	s.tenants[t.ID] = t
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) getTenant(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tenants[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "tenant not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) updateTenant(w http.ResponseWriter, r *http.Request) {
	var t api.Tenant
	if !readBody(w, r, &t) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[id]; !ok {
		writeProblem(w, http.StatusNotFound, "tenant not found")
		return
	}
	t.ID = id
	s.tenants[id] = t
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteTenant(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tenants[id]; !ok {
		writeProblem(w, http.StatusNotFound, "tenant not found")
		return
	}
	delete(s.tenants, id)
	w.WriteHeader(http.StatusNoContent)
}

/*************
 * vehicles
 *************/

func (s *Server) listVehicles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createVehicle(w http.ResponseWriter, r *http.Request) {
	var v api.Vehicle
	if !readBody(w, r, &v) {
		return
	}
	if v.PlateNumber == "" || v.TenantID == 0 {
		writeProblem(w, http.StatusBadRequest, "plateNumber and tenantId are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	v.ID = s.nextID
	s.vehicles[v.ID] = v
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) vehiclesByTenant(w http.ResponseWriter, r *http.Request) {
	tenantID := idParam(r, "tenantId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Vehicle, 0)
	for _, v := range s.vehicles {
		if v.TenantID == tenantID {
			out = append(out, v)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getVehicle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) updateVehicle(w http.ResponseWriter, r *http.Request) {
	var v api.Vehicle
	if !readBody(w, r, &v) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[id]; !ok {
		writeProblem(w, http.StatusNotFound, "vehicle not found")
		return
	}
	v.ID = id
	s.vehicles[id] = v
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[id]; !ok {
		writeProblem(w, http.StatusNotFound, "vehicle not found")
		return
	}
	delete(s.vehicles, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fuelLevel(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[id]; !ok {
		writeProblem(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if p, ok := s.latestPosition(id); ok && p.FuelLevelLiters != nil {
		writeJSON(w, http.StatusOK, *p.FuelLevelLiters)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) lastPosition(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[id]; !ok {
		writeProblem(w, http.StatusNotFound, "vehicle not found")
		return
	}
	p, ok := s.latestPosition(id)
	if !ok {
		writeProblem(w, http.StatusNotFound, "no positions recorded")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// latestPosition returns the most recently created position for a vehicle.
// Callers must hold s.mu.
func (s *Server) latestPosition(vehicleID int64) (api.GpsPosition, bool) {
	for i := len(s.positionOrder) - 1; i >= 0; i-- {
		p := s.positions[s.positionOrder[i]]
		if p.VehicleID == vehicleID {
			return p, true
		}
	}
	return api.GpsPosition{}, false
}

/*************
 * fuel alerts
 *************/

func (s *Server) createFuelAlert(w http.ResponseWriter, r *http.Request) {
	var a api.FuelAlert
	if !readBody(w, r, &a) {
		return
	}
	if a.VehicleID == 0 || a.Name == "" {
		writeProblem(w, http.StatusBadRequest, "vehicleId and name are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	s.fuelAlerts[a.ID] = a
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) fuelAlertsByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.FuelAlert, 0)
	for _, a := range s.fuelAlerts {
		if a.VehicleID == vehicleID {
			out = append(out, a)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getFuelAlert(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.fuelAlerts[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "fuel alert not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) updateFuelAlert(w http.ResponseWriter, r *http.Request) {
	var a api.FuelAlert
	if !readBody(w, r, &a) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fuelAlerts[id]; !ok {
		writeProblem(w, http.StatusNotFound, "fuel alert not found")
		return
	}
	a.ID = id
	s.fuelAlerts[id] = a
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteFuelAlert(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fuelAlerts[id]; !ok {
		writeProblem(w, http.StatusNotFound, "fuel alert not found")
		return
	}
	delete(s.fuelAlerts, id)
	w.WriteHeader(http.StatusNoContent)
}

/*************
 * geofences
 *************/

func (s *Server) listGeofences(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Geofence, 0, len(s.geofences))
	for _, g := range s.geofences {
		out = append(out, g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createGeofence(w http.ResponseWriter, r *http.Request) {
	var g api.Geofence
	if !readBody(w, r, &g) {
		return
	}
	if g.VehicleID == 0 || g.Name == "" {
		writeProblem(w, http.StatusBadRequest, "vehicleId and name are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	g.ID = s.nextID
	s.geofences[g.ID] = g
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) geofencesContaining(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if errLat != nil || errLon != nil {
		writeProblem(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}
	point := api.Point{Latitude: lat, Longitude: lon}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Geofence, 0)
	for _, g := range s.geofences {
		if haversineMeters(g.Center, point) <= g.RadiusMeters {
			out = append(out, g)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) geofencesByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Geofence, 0)
	for _, g := range s.geofences {
		if g.VehicleID == vehicleID {
			out = append(out, g)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getGeofence(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.geofences[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "geofence not found")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) updateGeofence(w http.ResponseWriter, r *http.Request) {
	var g api.Geofence
	if !readBody(w, r, &g) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.geofences[id]; !ok {
		writeProblem(w, http.StatusNotFound, "geofence not found")
		return
	}
	g.ID = id
	s.geofences[id] = g
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteGeofence(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.geofences[id]; !ok {
		writeProblem(w, http.StatusNotFound, "geofence not found")
		return
	}
	delete(s.geofences, id)
	w.WriteHeader(http.StatusNoContent)
}

/*************
 * gps positions
 *************/

func (s *Server) createPosition(w http.ResponseWriter, r *http.Request) {
	var p api.GpsPosition
	if !readBody(w, r, &p) {
		return
	}
	if p.VehicleID == 0 || p.TimestampUTC == "" {
		writeProblem(w, http.StatusBadRequest, "vehicleId and timestampUtc are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.positions[p.ID] = p
	s.positionOrder = append(s.positionOrder, p.ID)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) distance(w http.ResponseWriter, r *http.Request) {
	vehicleID, _ := strconv.ParseInt(r.URL.Query().Get("vehicleId"), 10, 64)
	start, errStart := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	end, errEnd := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if errStart != nil || errEnd != nil {
		writeProblem(w, http.StatusBadRequest, "start and end must be ISO-8601 instants")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var track []api.GpsPosition
	for _, id := range s.positionOrder {
		p := s.positions[id]
		if p.VehicleID != vehicleID {
			continue
		}
		ts, err := time.Parse(time.RFC3339, p.TimestampUTC)
		if err != nil || ts.Before(start) || ts.After(end) {
			continue
		}
		track = append(track, p)
	}

	total := 0.0
	for i := 1; i < len(track); i++ {
		total += haversineMeters(
			api.Point{Latitude: track[i-1].Latitude, Longitude: track[i-1].Longitude},
			api.Point{Latitude: track[i].Latitude, Longitude: track[i].Longitude},
		)
	}
	writeJSON(w, http.StatusOK, total/1000)
}

func (s *Server) distanceFromLastStop(w http.ResponseWriter, r *http.Request) {
	vehicleID, _ := strconv.ParseInt(r.URL.Query().Get("vehicleId"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	var track []api.GpsPosition
	for _, id := range s.positionOrder {
		p := s.positions[id]
		if p.VehicleID == vehicleID {
			track = append(track, p)
		}
	}

	// Walk back to the last engine-off sample; the travelled distance is
	// accumulated from there.
	startIdx := 0
	for i := len(track) - 1; i >= 0; i-- {
		if track[i].EngineOn != nil && !*track[i].EngineOn {
			startIdx = i
			break
		}
	}

	total := 0.0
	for i := startIdx + 1; i < len(track); i++ {
		total += haversineMeters(
			api.Point{Latitude: track[i-1].Latitude, Longitude: track[i-1].Longitude},
			api.Point{Latitude: track[i].Latitude, Longitude: track[i].Longitude},
		)
	}
	writeJSON(w, http.StatusOK, api.DistanceFromLastStop{VehicleID: vehicleID, DistanceKm: total / 1000})
}

/*************
 * notifications
 *************/

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, n)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createSampleNotification(w http.ResponseWriter, r *http.Request) {
	var n api.Notification
	if !readBody(w, r, &n) {
		return
	}
	if n.VehicleID == 0 {
		writeProblem(w, http.StatusBadRequest, "vehicleId is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	n.ID = s.nextID
	s.notifications[n.ID] = n
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) createSampleNotificationFor(w http.ResponseWriter, r *http.Request) {
	tenantID := idParam(r, "tenantId")
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	n := api.Notification{
		ID:           s.nextID,
		TenantID:     &tenantID,
		VehicleID:    vehicleID,
		Title:        fmt.Sprintf("Sample notification %d", s.nextID),
		Message:      "Generated sample notification",
		TimestampUTC: time.Now().UTC().Format(time.RFC3339),
	}
	s.notifications[n.ID] = n
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) notificationsByTenant(w http.ResponseWriter, r *http.Request) {
	tenantID := idParam(r, "tenantId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Notification, 0)
	for _, n := range s.notifications {
		if n.TenantID != nil && *n.TenantID == tenantID {
			out = append(out, n)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) notificationsByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Notification, 0)
	for _, n := range s.notifications {
		if n.VehicleID == vehicleID {
			out = append(out, n)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getNotification(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "notification not found")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		writeProblem(w, http.StatusNotFound, "notification not found")
		return
	}
	n.IsRead = true
	s.notifications[id] = n
	w.WriteHeader(http.StatusNoContent)
}

/*************
 * insurances, parts, inspections
 *************/

func (s *Server) listInsurances(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.VehicleInsurance, 0, len(s.insurances))
	for _, i := range s.insurances {
		out = append(out, i)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createInsurance(w http.ResponseWriter, r *http.Request) {
	var i api.VehicleInsurance
	if !readBody(w, r, &i) {
		return
	}
	if i.VehicleID == 0 || i.Provider == "" {
		writeProblem(w, http.StatusBadRequest, "vehicleId and provider are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	i.ID = s.nextID
	s.insurances[i.ID] = i
	writeJSON(w, http.StatusCreated, i)
}

func (s *Server) insurancesByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.VehicleInsurance, 0)
	for _, i := range s.insurances {
		if i.VehicleID == vehicleID {
			out = append(out, i)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getInsurance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.insurances[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "insurance not found")
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (s *Server) updateInsurance(w http.ResponseWriter, r *http.Request) {
	var i api.VehicleInsurance
	if !readBody(w, r, &i) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.insurances[id]; !ok {
		writeProblem(w, http.StatusNotFound, "insurance not found")
		return
	}
	i.ID = id
	s.insurances[id] = i
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteInsurance(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.insurances[id]; !ok {
		writeProblem(w, http.StatusNotFound, "insurance not found")
		return
	}
	delete(s.insurances, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listParts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.VehiclePart, 0, len(s.parts))
	for _, p := range s.parts {
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createPart(w http.ResponseWriter, r *http.Request) {
	var p api.VehiclePart
	if !readBody(w, r, &p) {
		return
	}
	if p.VehicleID == 0 || p.Name == "" {
		writeProblem(w, http.StatusBadRequest, "vehicleId and name are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.parts[p.ID] = p
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) partsByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.VehiclePart, 0)
	for _, p := range s.parts {
		if p.VehicleID == vehicleID {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getPart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.parts[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "part not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updatePart(w http.ResponseWriter, r *http.Request) {
	var p api.VehiclePart
	if !readBody(w, r, &p) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[id]; !ok {
		writeProblem(w, http.StatusNotFound, "part not found")
		return
	}
	p.ID = id
	s.parts[id] = p
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deletePart(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[id]; !ok {
		writeProblem(w, http.StatusNotFound, "part not found")
		return
	}
	delete(s.parts, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listInspections(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.VehicleTechnicalInspection, 0, len(s.inspections))
	for _, i := range s.inspections {
		out = append(out, i)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createInspection(w http.ResponseWriter, r *http.Request) {
	var i api.VehicleTechnicalInspection
	if !readBody(w, r, &i) {
		return
	}
	if i.VehicleID == 0 || i.ExpiryDate == "" {
		writeProblem(w, http.StatusBadRequest, "vehicleId and expiryDate are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	i.ID = s.nextID
	s.inspections[i.ID] = i
	writeJSON(w, http.StatusCreated, i)
}

func (s *Server) inspectionsByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := idParam(r, "vehicleId")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.VehicleTechnicalInspection, 0)
	for _, i := range s.inspections {
		if i.VehicleID == vehicleID {
			out = append(out, i)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getInspection(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.inspections[idParam(r, "id")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "inspection not found")
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (s *Server) updateInspection(w http.ResponseWriter, r *http.Request) {
	var i api.VehicleTechnicalInspection
	if !readBody(w, r, &i) {
		return
	}
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inspections[id]; !ok {
		writeProblem(w, http.StatusNotFound, "inspection not found")
		return
	}
	i.ID = id
	s.inspections[id] = i
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteInspection(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inspections[id]; !ok {
		writeProblem(w, http.StatusNotFound, "inspection not found")
		return
	}
	delete(s.inspections, id)
	w.WriteHeader(http.StatusNoContent)
}
