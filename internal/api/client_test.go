package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, logging.NewDefault("error")), srv
}

func TestClient_Do_SuccessDecodesJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Tenants/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Acme","slug":"acme"}`))
	})

	tenant, err := c.GetTenant(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), tenant.ID)
	assert.Equal(t, "Acme", tenant.Name)
}

func TestClient_Do_EmptyBodyYieldsZeroValue(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UpdateTenant(context.Background(), Tenant{ID: 1, Name: "x"})
	require.NoError(t, err)
}

func TestClient_Do_SetsJSONContentType(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id":1}`))
	})

	_, err := c.CreateTenant(context.Background(), Tenant{Name: "t"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", got)
}

func TestClient_Do_CallerHeadersOverrideDefaults(t *testing.T) {
	var got string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	})

	_, err := c.do(context.Background(), http.MethodPost, "/api/Tenants", []byte(`{}`),
		http.Header{"Content-Type": []string{"application/json; charset=utf-8"}})
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", got)
}

func TestClient_Do_NonOKRaisesAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"missing"}`, http.StatusNotFound)
	})

	_, err := c.GetTenant(context.Background(), 999999)
	require.Error(t, err)

	d := Extract(err)
	require.NotNil(t, d)
	assert.Equal(t, http.StatusNotFound, d.Status)
	assert.Equal(t, "Not Found", d.StatusText)
	assert.Equal(t, "/api/Tenants/999999", d.URL)
	assert.Equal(t, http.MethodGet, d.Method)
	assert.Empty(t, d.RequestBody)
	assert.Contains(t, d.ResponseBody, "missing")
	assert.WithinDuration(t, time.Now().UTC(), d.Timestamp, 5*time.Second)
}

func TestClient_Do_CapturesRequestBodyOnFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.CreateTenant(context.Background(), Tenant{Name: "broken"})
	require.Error(t, err)

	d := Extract(err)
	require.NotNil(t, d)
	assert.Equal(t, http.StatusBadRequest, d.Status)
	assert.Contains(t, d.RequestBody, `"broken"`)
}

func TestClient_Do_UnreadableErrorBodyDegrades(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Announce a large body but send nothing, so the client's read fails.
		w.Header().Set("Content-Length", "64")
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetTenant(context.Background(), 1)
	require.Error(t, err)

	d := Extract(err)
	require.NotNil(t, d)
	assert.Equal(t, http.StatusInternalServerError, d.Status)
	assert.Empty(t, d.ResponseBody)
}

func TestClient_Do_InvalidJSONOnSuccessIsHardFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	_, err := c.GetTenant(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, Extract(err))
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Do_NetworkErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL, time.Second, logging.NewDefault("error"))

	_, err := c.ListTenants(context.Background())
	require.Error(t, err)
	assert.Nil(t, Extract(err))
}

func TestClient_QueryEndpoints_BuildExpectedURLs(t *testing.T) {
	var path, query string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.RawQuery
		if strings.Contains(r.URL.Path, "distance") {
			w.Write([]byte(`12.5`))
			return
		}
		w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	_, err := c.GeofencesContaining(ctx, 40.1772, 44.5035)
	require.NoError(t, err)
	assert.Equal(t, "/api/Geofences/contains", path)
	assert.Contains(t, query, "latitude=40.1772")
	assert.Contains(t, query, "longitude=44.5035")

	_, err = c.GetDistance(ctx, 5, "2026-01-01T00:00:00Z", "2026-01-02T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "/api/GpsPositions/distance", path)
	assert.Contains(t, query, "vehicleId=5")
}

func TestClient_MarkAsRead_UsesPut(t *testing.T) {
	var method, path string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
	})

	require.NoError(t, c.MarkNotificationAsRead(context.Background(), 42))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/Notifications/42/mark-as-read", path)
}
