package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise_portal/internal/models"
)

func TestDo_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Zones().GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no token in context should omit the header")

	ctx := WithToken(context.Background(), "tok-123")
	_, err = client.Zones().GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestGetAll_ResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"Z001","name":"Downtown"}]`, 1},
		{"data wrapper", `{"data":[{"id":"Z001"},{"id":"Z002"}]}`, 2},
		{"keyed wrapper", `{"zones":[{"id":"Z001"}]}`, 1},
		{"null body", `null`, 0},
		{"empty object", `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			zones, err := New(srv.URL).Zones().GetAll(context.Background())
			require.NoError(t, err)
			assert.Len(t, zones, tt.want)
		})
	}
}

func TestDo_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        string
	}{
		{"json message", 400, "application/json", `{"message":"Zone already exists"}`, "Zone already exists"},
		{"json error key", 422, "application/json", `{"error":"invalid shift"}`, "invalid shift"},
		{"plain text", 500, "text/plain", "backend exploded", "backend exploded"},
		{"empty body", 500, "text/plain", "", "Request failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Zones().GetAll(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Workers().GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Session expired. Please login again.", ErrorMessage(err))

	assert.False(t, IsUnauthorized(nil))
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"empId":"W001","name":"Alice","role":"Admin","token":"tok"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Auth().Login(context.Background(), models.LoginRequest{EmpID: "W001", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, "tok", resp.Token)
}

func TestPickupUpdatePath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := New(srv.URL).Pickups().Update(context.Background(), "P001", models.Pickup{ID: "P001"})
	require.NoError(t, err)
	assert.Equal(t, "/wastewise/scheduler/pickups/update/P001", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestFilterAndReportPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.RequestURI())
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	_, err := client.Vehicles().GetPickupTrucks(ctx)
	require.NoError(t, err)
	_, err = client.Vehicles().GetRouteTrucks(ctx)
	require.NoError(t, err)
	_, err = client.Workers().GetAvailable(ctx)
	require.NoError(t, err)
	_, err = client.Workers().GetByRole(ctx, "collector")
	require.NoError(t, err)
	_, err = client.Zones().NamesAndIDs(ctx)
	require.NoError(t, err)
	_, err = client.Routes().GetByZone(ctx, "Z001")
	require.NoError(t, err)

	weight := 42.5
	require.NoError(t, client.WasteLogs().StartCollection(ctx, models.WasteLog{ZoneID: "Z001", VehicleID: "RT001"}))
	require.NoError(t, client.WasteLogs().EndCollection(ctx, models.WasteLog{ZoneID: "Z001", VehicleID: "RT001", Weight: &weight}))

	assert.Equal(t, "GET /wastewise/admin/vehicle-management/filter/pickuptruck", paths[0])
	assert.Equal(t, "GET /wastewise/admin/vehicle-management/filter/routetruck", paths[1])
	assert.Equal(t, "GET /wastewise/admin/workers/available", paths[2])
	assert.Equal(t, "GET /wastewise/admin/zones/namesandids", paths[4])
	assert.Equal(t, "POST /wastewise/admin/wastelogs/start", paths[6])
	assert.Equal(t, "PUT /wastewise/admin/wastelogs/end", paths[7])
}

func TestZoneMutationPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	require.NoError(t, client.Zones().Create(ctx, models.Zone{Name: "Downtown"}))
	require.NoError(t, client.Zones().Update(ctx, "Z001", models.Zone{ID: "Z001"}))
	require.NoError(t, client.Zones().Delete(ctx, "Z001"))

	assert.Equal(t, []string{
		"POST /wastewise/admin/zones/create",
		"PUT /wastewise/admin/zones/update/Z001",
		"DELETE /wastewise/admin/zones/delete/Z001",
	}, paths)
}
