package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

func (a *App) assignmentOptions() []forms.Option {
	opts := []forms.Option{}
	for _, s := range a.Stores.Assignments.Items() {
		opts = append(opts, forms.Option{Value: s.AssignmentID, Label: s.AssignmentID + " - " + a.zoneName(s.Zone)})
	}
	return opts
}

// routeOptionsForZone narrows the route picker to the selected zone.
func (a *App) routeOptionsForZone(zoneID string) []forms.Option {
	opts := []forms.Option{}
	for _, r := range a.Stores.Routes.Items() {
		if r.ZoneID == zoneID {
			opts = append(opts, forms.Option{Value: r.ID, Label: r.ID + " - " + r.Name})
		}
	}
	return opts
}

// truckOptions lists vehicles of the given type that can take new work.
// include keeps the vehicle already on the record selectable during updates.
func (a *App) truckOptions(vehicleType string, include ...string) []forms.Option {
	keep := map[string]bool{}
	for _, id := range include {
		keep[id] = true
	}
	opts := []forms.Option{}
	for _, v := range a.Stores.Vehicles.Items() {
		if !strings.EqualFold(v.Type, vehicleType) {
			continue
		}
		if !strings.EqualFold(v.Status, models.VehicleStatusAvailable) && !keep[v.ID] {
			continue
		}
		opts = append(opts, forms.Option{Value: v.ID, Label: v.ID + " - " + v.RegistrationNumber})
	}
	return opts
}

// availableWorkerOptions lists workers free for new duty, plus the ones
// already holding slots on the record being edited.
func (a *App) availableWorkerOptions(include ...string) []forms.Option {
	keep := map[string]bool{}
	for _, id := range include {
		keep[id] = true
	}
	opts := []forms.Option{}
	for _, w := range a.Stores.Workers.Items() {
		if !strings.EqualFold(w.Status, models.WorkerStatusAvailable) && !keep[w.ID] {
			continue
		}
		opts = append(opts, forms.Option{Value: w.ID, Label: w.ID + " - " + w.Name})
	}
	return opts
}

var shiftOptions = []forms.Option{
	{Value: models.ShiftDay, Label: "Day"},
	{Value: models.ShiftNight, Label: "Night"},
}

// AssignmentDashboard lists the route assignments with names resolved from
// the zone, route and worker caches.
func (a *App) AssignmentDashboard(c *gin.Context) {
	assignments := a.Stores.Assignments.Items()
	byShift := a.Stores.Assignments.CountBy(func(s models.Assignment) string { return s.Shift })
	stats := []Stat{
		{Label: "Total assignments", Value: len(assignments)},
		{Label: "Day shift", Value: byShift[models.ShiftDay]},
		{Label: "Night shift", Value: byShift[models.ShiftNight]},
	}

	rows := make([]Row, 0, len(assignments))
	for _, s := range assignments {
		routeName := s.Route
		if r, ok := a.Stores.Routes.Find(s.Route); ok {
			routeName = r.Name
		}
		workers := make([]string, 0, len(s.AssignedWorkers))
		for _, id := range s.AssignedWorkers {
			workers = append(workers, a.workerName(id))
		}
		rows = append(rows, Row{ID: s.AssignmentID, Cells: []string{
			s.AssignmentID, a.zoneName(s.Zone), routeName, s.Vehicle,
			strings.Join(workers, ", "), s.Shift,
		}})
	}

	a.renderResource(c, "Route assignments", "/admin/assignments", stats,
		[]string{"ID", "Zone", "Route", "Vehicle", "Workers", "Shift"}, rows, a.Stores.Assignments.Err())
}

func (a *App) AssignmentRefresh(c *gin.Context) {
	if err := a.Stores.Assignments.Refresh(a.ctx(c)); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	c.Redirect(302, "/admin/assignments")
}

// assignmentFields builds the dependent pickers: routes follow the zone,
// worker two excludes worker one. Stale dependent picks are cleared so a
// reload round trip can never submit a value outside its filtered options.
func (a *App) assignmentFields(draft map[string]string, include models.Assignment) []forms.Field {
	routeOpts := a.routeOptionsForZone(draft["zoneId"])
	forms.ClearDependent(draft, "routeId", routeOpts)

	vehicleOpts := a.truckOptions(models.VehicleTypeRouteTruck, include.Vehicle)
	forms.ClearDependent(draft, "vehicleId", vehicleOpts)

	workerOpts := a.availableWorkerOptions(include.AssignedWorkers...)
	worker2Opts := forms.Exclude(workerOpts, draft["worker1"])
	forms.ClearDependent(draft, "worker2", worker2Opts)

	return []forms.Field{
		{Name: "zoneId", Label: "Zone", Kind: "select", Options: a.zoneOptions(), Reload: true},
		{Name: "routeId", Label: "Route", Kind: "select", Options: routeOpts},
		{Name: "vehicleId", Label: "Vehicle", Kind: "select", Options: vehicleOpts},
		{Name: "worker1", Label: "Worker 1", Kind: "select", Options: workerOpts, Reload: true},
		{Name: "worker2", Label: "Worker 2", Kind: "select", Options: worker2Opts},
		{Name: "shift", Label: "Shift", Kind: "select", Options: shiftOptions},
	}
}

func assignmentRules(draft map[string]string) map[string][]validation.Rule {
	return map[string][]validation.Rule{
		"zoneId":    {validation.Select("Zone")},
		"routeId":   {validation.Select("Route")},
		"vehicleId": {validation.Select("Vehicle")},
		"worker1":   {validation.Select("Worker 1")},
		"worker2": {
			validation.Select("Worker 2"),
			validation.DistinctFrom(func() string { return draft["worker1"] },
				"Worker 2 must be different from Worker 1"),
		},
		"shift": {validation.Select("Shift")},
	}
}

func assignmentRequest(draft map[string]string) models.AssignmentRequest {
	return models.AssignmentRequest{
		ZoneID:    draft["zoneId"],
		RouteID:   draft["routeId"],
		VehicleID: draft["vehicleId"],
		WorkerIDs: []string{draft["worker1"], draft["worker2"]},
		Shift:     draft["shift"],
	}
}

func (a *App) createAssignmentScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			form := &forms.Form{
				Title:  "Create assignment",
				Action: "/admin/assignments/create",
				Submit: "Create assignment",
				Back:   "/admin/assignments",
				Fields: a.assignmentFields(draft, models.Assignment{}),
			}
			return form, assignmentRules(draft)
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Assignments.Create(ctx, assignmentRequest(draft))
		},
		success: "Assignment created successfully",
		done:    "/admin/assignments",
	}
}

func (a *App) NewAssignment(c *gin.Context) {
	a.showForm(c, a.createAssignmentScreen(), map[string]string{})
}

func (a *App) CreateAssignment(c *gin.Context) { a.submitForm(c, a.createAssignmentScreen()) }

func (a *App) updateAssignmentScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			var current models.Assignment
			if id := draft["id"]; id != "" {
				current, _ = a.Stores.Assignments.Find(id)
				if id != draft["_loaded"] {
					draft["zoneId"] = current.Zone
					draft["routeId"] = current.Route
					draft["vehicleId"] = current.Vehicle
					if len(current.AssignedWorkers) > 0 {
						draft["worker1"] = current.AssignedWorkers[0]
					}
					if len(current.AssignedWorkers) > 1 {
						draft["worker2"] = current.AssignedWorkers[1]
					}
					draft["shift"] = current.Shift
					draft["_loaded"] = id
				}
			}

			fields := append([]forms.Field{
				{Name: "id", Label: "Assignment", Kind: "select", Options: a.assignmentOptions(), Reload: true},
				{Name: "_loaded", Kind: "hidden"},
			}, a.assignmentFields(draft, current)...)

			form := &forms.Form{
				Title:  "Update assignment",
				Action: "/admin/assignments/update",
				Submit: "Update assignment",
				Back:   "/admin/assignments",
				Fields: fields,
			}
			rules := assignmentRules(draft)
			rules["id"] = []validation.Rule{validation.Select("Assignment")}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Assignments.Update(ctx, draft["id"], assignmentRequest(draft))
		},
		success: "Assignment updated successfully",
		done:    "/admin/assignments",
	}
}

func (a *App) EditAssignment(c *gin.Context) {
	a.showForm(c, a.updateAssignmentScreen(), map[string]string{"id": c.Query("id")})
}

func (a *App) UpdateAssignment(c *gin.Context) { a.submitForm(c, a.updateAssignmentScreen()) }

func (a *App) deleteAssignmentScreen() deleteScreen {
	return deleteScreen{
		title:       "Delete assignment",
		selectLabel: "Assignment",
		action:      "/admin/assignments/delete",
		back:        "/admin/assignments",
		success:     "Assignment deleted successfully",
		options:     a.assignmentOptions,
		details: func(id string) ([][2]string, bool) {
			s, ok := a.Stores.Assignments.Find(id)
			if !ok {
				return nil, false
			}
			workers := make([]string, 0, len(s.AssignedWorkers))
			for _, w := range s.AssignedWorkers {
				workers = append(workers, a.workerName(w))
			}
			routeName := s.Route
			if r, ok := a.Stores.Routes.Find(s.Route); ok {
				routeName = r.Name
			}
			return [][2]string{
				{"ID", s.AssignmentID},
				{"Zone", a.zoneName(s.Zone)},
				{"Route", routeName},
				{"Vehicle", s.Vehicle},
				{"Workers", strings.Join(workers, ", ")},
				{"Shift", s.Shift},
			}, true
		},
		blockers: func(id string) ([]string, string) {
			// Deleting an assignment frees its vehicle and workers; nothing
			// depends on it.
			return nil, ""
		},
		perform: func(ctx context.Context, id string) error {
			return a.Stores.Assignments.Delete(ctx, id)
		},
	}
}

func (a *App) ShowDeleteAssignment(c *gin.Context) { a.showDelete(c, a.deleteAssignmentScreen()) }
func (a *App) DeleteAssignment(c *gin.Context)     { a.submitDelete(c, a.deleteAssignmentScreen()) }
