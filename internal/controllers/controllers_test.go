package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/config"
	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/routes"
	"wastewise_portal/internal/session"
	"wastewise_portal/internal/store"
)

// fakeBackend is an in-memory stand-in for the WasteWise API.
type fakeBackend struct {
	mu          sync.Mutex
	zones       []models.Zone
	routes      []models.Route
	vehicles    []models.Vehicle
	workers     []models.Worker
	assignments []models.Assignment
	loginOK     bool
	force401    bool

	routeCreates int
	logCalls     []string
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
	gate := func(w http.ResponseWriter) bool {
		b.mu.Lock()
		blocked := b.force401
		b.mu.Unlock()
		if blocked {
			w.WriteHeader(http.StatusUnauthorized)
		}
		return blocked
	}

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		ok := b.loginOK
		b.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]string{
			"empId": "W010", "name": "Sam Scheduler", "role": models.RoleScheduler, "token": "backend-token",
		})
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {})

	mux.HandleFunc("/wastewise/admin/zones/list", func(w http.ResponseWriter, r *http.Request) {
		if gate(w) {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, map[string]any{"data": b.zones})
	})
	mux.HandleFunc("/wastewise/admin/zones/create", func(w http.ResponseWriter, r *http.Request) {
		var z models.Zone
		json.NewDecoder(r.Body).Decode(&z)
		b.mu.Lock()
		z.ID = "Z900"
		b.zones = append(b.zones, z)
		b.mu.Unlock()
		writeJSON(w, z)
	})
	mux.HandleFunc("/wastewise/admin/zones/delete/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/wastewise/admin/zones/delete/")
		b.mu.Lock()
		kept := b.zones[:0]
		for _, z := range b.zones {
			if z.ID != id {
				kept = append(kept, z)
			}
		}
		b.zones = kept
		b.mu.Unlock()
		writeJSON(w, map[string]string{"message": "deleted"})
	})

	mux.HandleFunc("/wastewise/admin/routes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			b.mu.Lock()
			b.routeCreates++
			b.mu.Unlock()
			writeJSON(w, map[string]string{"message": "ok"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, b.routes)
	})
	mux.HandleFunc("/wastewise/admin/vehicle-management", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, b.vehicles)
	})
	mux.HandleFunc("/wastewise/admin/workers", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, b.workers)
	})
	mux.HandleFunc("/wastewise/admin/assignments", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, b.assignments)
	})
	mux.HandleFunc("/wastewise/scheduler/pickups", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []models.Pickup{})
	})
	mux.HandleFunc("/wastewise/admin/wastelogs/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.logCalls = append(b.logCalls, r.Method+" "+r.URL.Path)
		b.mu.Unlock()
		writeJSON(w, map[string]any{"totalWeight": 120.5, "totalCollections": 8})
	})

	return mux
}

func seededBackend() *fakeBackend {
	return &fakeBackend{
		zones: []models.Zone{{ID: "Z001", Name: "Downtown", AreaCoverage: "10 sq km", Status: "Active"}},
		routes: []models.Route{
			{ID: "R001", ZoneID: "Z001", Name: "North Loop", PathDetails: "Main St", EstimatedTime: "2 hours"},
		},
		vehicles: []models.Vehicle{
			{ID: "RT001", Type: models.VehicleTypeRouteTruck, RegistrationNumber: "KBX 123", Status: models.VehicleStatusAvailable},
		},
		workers: []models.Worker{
			{ID: "W002", Name: "Bob", Phone: "+15550001234", Email: "bob@wastewise.io", Status: models.WorkerStatusAvailable},
		},
	}
}

func newPortal(t *testing.T, backend *fakeBackend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{Port: "0", Environment: "test", APIBaseURL: srv.URL}
	client := api.New(srv.URL)
	stores := store.NewStores(client)
	stores.WarmUp(context.Background())

	sessions := session.NewManager("test-secret", time.Hour)
	app := controllers.NewApp(cfg, client, stores, sessions)
	return routes.SetupRouter(app, sessions)
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signIn(t *testing.T, r *gin.Engine, empID string) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/signin", url.Values{"empId": {empID}, "password": {"pw"}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "sign-in must set the session cookie")
	return cookies
}

func TestSignIn_DemoFallbackRoles(t *testing.T) {
	r := newPortal(t, seededBackend())

	// Backend rejects; W001 falls back to the demo admin.
	w := postForm(r, "/signin", url.Values{"empId": {"W001"}, "password": {"pw"}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = postForm(r, "/signin", url.Values{"empId": {"W002"}, "password": {"pw"}}, nil)
	assert.Equal(t, "/scheduler", w.Header().Get("Location"))

	w = postForm(r, "/signin", url.Values{"empId": {"W007"}, "password": {"pw"}}, nil)
	assert.Equal(t, "/worker", w.Header().Get("Location"))
}

func TestSignIn_BackendRole(t *testing.T) {
	backend := seededBackend()
	backend.loginOK = true
	r := newPortal(t, backend)

	w := postForm(r, "/signin", url.Values{"empId": {"W010"}, "password": {"pw"}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/scheduler", w.Header().Get("Location"))
}

func TestSignIn_ValidationErrors(t *testing.T) {
	r := newPortal(t, seededBackend())

	w := postForm(r, "/signin", url.Values{"empId": {""}, "password": {""}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee ID is required")
}

func TestZoneDashboard(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W001")

	w := get(r, "/admin/zones", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Downtown")
	assert.Contains(t, body, "Z001")
}

func TestCreateZone_FetchAfterWrite(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W001")

	w := postForm(r, "/admin/zones/create",
		url.Values{"name": {"Harbor"}, "areaCoverage": {"5 sq km"}}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/admin/zones")

	w = get(r, "/admin/zones", cookies)
	assert.Contains(t, w.Body.String(), "Harbor", "new zone must appear after the re-fetch")
}

func TestCreateZone_ValidationBlocksSubmit(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W001")

	w := postForm(r, "/admin/zones/create", url.Values{"name": {""}, "areaCoverage": {""}}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Zone name is required")
}

func TestCreateRoute_BadEstimatedTimeNeverReachesBackend(t *testing.T) {
	backend := seededBackend()
	r := newPortal(t, backend)
	cookies := signIn(t, r, "W001")

	w := postForm(r, "/admin/routes/create", url.Values{
		"zoneId":        {"Z001"},
		"name":          {"South Loop"},
		"pathDetails":   {"River Rd"},
		"estimatedTime": {"soon"},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Estimated time must be in format")
	assert.Equal(t, 0, backend.routeCreates)
}

func TestDeleteZone_BlockedByDependentRoutes(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W001")

	w := postForm(r, "/admin/zones/delete",
		url.Values{"id": {"Z001"}, "confirm": {"delete"}}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Deletion refused")
	assert.Contains(t, body, "North Loop")
}

func TestDeleteZone_RequiresTypedConfirmation(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W001")

	w := postForm(r, "/admin/zones/delete",
		url.Values{"id": {"Z001"}, "confirm": {"yes"}}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Type &#34;delete&#34; to confirm.`)
}

func TestRefresh_401ClearsSession(t *testing.T) {
	backend := seededBackend()
	r := newPortal(t, backend)
	cookies := signIn(t, r, "W001")

	backend.mu.Lock()
	backend.force401 = true
	backend.mu.Unlock()

	w := postForm(r, "/admin/zones/refresh", nil, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/signin")

	// The session cookie must be expired in the same response.
	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestRoleGate(t *testing.T) {
	r := newPortal(t, seededBackend())
	admin := signIn(t, r, "W001")

	// An admin poking at the worker screen is sent back home.
	w := get(r, "/worker", admin)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Signed-out visitors land on sign-in.
	w = get(r, "/admin/zones", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))
}

func TestAdminHome_Reports(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W001")

	w := get(r, "/admin", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "120.5 kg")
	assert.Contains(t, body, "Collections this week")
}

func TestWorkerHome_Unassigned(t *testing.T) {
	r := newPortal(t, seededBackend())
	cookies := signIn(t, r, "W007")

	w := get(r, "/worker", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no active assignment")
}

func TestWorkerCollectionFlow(t *testing.T) {
	backend := seededBackend()
	backend.assignments = []models.Assignment{{
		AssignmentID:    "AS001",
		Zone:            "Z001",
		Route:           "R001",
		Vehicle:         "RT001",
		AssignedWorkers: []string{"W007", "W002"},
		Shift:           models.ShiftDay,
	}}
	r := newPortal(t, backend)
	cookies := signIn(t, r, "W007")

	w := get(r, "/worker", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Route assignment AS001")
	assert.Contains(t, body, "North Loop")
	assert.Contains(t, body, "Start collection")

	w = postForm(r, "/worker/collection/start", nil, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "flash=")

	// A non-numeric weight never reaches the backend.
	w = postForm(r, "/worker/collection/end", url.Values{"weight": {"heavy"}}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=")

	w = postForm(r, "/worker/collection/end", url.Values{"weight": {"120.5"}}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "flash=")

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Contains(t, backend.logCalls, "POST /wastewise/admin/wastelogs/start")
	ends := 0
	for _, call := range backend.logCalls {
		if call == "PUT /wastewise/admin/wastelogs/end" {
			ends++
		}
	}
	assert.Equal(t, 1, ends, "the invalid weight must not reach the backend")
}
