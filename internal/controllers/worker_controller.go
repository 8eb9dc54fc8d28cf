package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

func (a *App) workerOptions() []forms.Option {
	opts := []forms.Option{}
	for _, w := range a.Stores.Workers.Items() {
		opts = append(opts, forms.Option{Value: w.ID, Label: w.ID + " - " + w.Name})
	}
	return opts
}

var workerStatusOptions = []forms.Option{
	{Value: models.WorkerStatusAvailable, Label: "Available"},
	{Value: models.WorkerStatusOccupied, Label: "Occupied"},
	{Value: models.WorkerStatusAbsent, Label: "Absent"},
}

// WorkerDashboard lists the workforce with per-status counts.
func (a *App) WorkerDashboard(c *gin.Context) {
	workers := a.Stores.Workers.Items()
	byStatus := a.Stores.Workers.CountBy(func(w models.Worker) string { return strings.ToLower(w.Status) })
	stats := []Stat{
		{Label: "Total workers", Value: len(workers)},
		{Label: "Available", Value: byStatus[models.WorkerStatusAvailable]},
		{Label: "Occupied", Value: byStatus[models.WorkerStatusOccupied]},
		{Label: "Absent", Value: byStatus[models.WorkerStatusAbsent]},
	}

	rows := make([]Row, 0, len(workers))
	for _, w := range workers {
		rows = append(rows, Row{ID: w.ID, Cells: []string{w.ID, w.Name, w.Phone, w.Email, w.Status}})
	}

	a.renderResource(c, "Worker management", "/admin/workers", stats,
		[]string{"ID", "Name", "Phone", "Email", "Status"}, rows, a.Stores.Workers.Err())
}

func (a *App) WorkerRefresh(c *gin.Context) {
	if err := a.Stores.Workers.Refresh(a.ctx(c)); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	c.Redirect(302, "/admin/workers")
}

func workerRules() map[string][]validation.Rule {
	return map[string][]validation.Rule{
		"name":   {validation.Required("Worker name"), validation.Name("Worker name")},
		"phone":  {validation.Required("Phone"), validation.Phone()},
		"email":  {validation.Required("Email"), validation.Email()},
		"status": {validation.Select("Status")},
	}
}

func (a *App) createWorkerScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			form := &forms.Form{
				Title:  "Create worker",
				Action: "/admin/workers/create",
				Submit: "Create worker",
				Back:   "/admin/workers",
				Fields: []forms.Field{
					{Name: "name", Label: "Worker name", Kind: "text", Placeholder: "Full name"},
					{Name: "phone", Label: "Phone", Kind: "text", Placeholder: "+1 555 000 1234"},
					{Name: "email", Label: "Email", Kind: "email", Placeholder: "name@example.com"},
					{Name: "status", Label: "Status", Kind: "select", Options: workerStatusOptions},
				},
			}
			return form, workerRules()
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Workers.Create(ctx, models.Worker{
				Name:   draft["name"],
				Phone:  draft["phone"],
				Email:  draft["email"],
				Status: draft["status"],
			})
		},
		success: "Worker created successfully",
		done:    "/admin/workers",
	}
}

func (a *App) NewWorker(c *gin.Context)    { a.showForm(c, a.createWorkerScreen(), map[string]string{}) }
func (a *App) CreateWorker(c *gin.Context) { a.submitForm(c, a.createWorkerScreen()) }

func (a *App) updateWorkerScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			if id := draft["id"]; id != "" && id != draft["_loaded"] {
				if w, ok := a.Stores.Workers.Find(id); ok {
					draft["name"] = w.Name
					draft["phone"] = w.Phone
					draft["email"] = w.Email
					draft["status"] = w.Status
				}
				draft["_loaded"] = id
			}

			form := &forms.Form{
				Title:  "Update worker",
				Action: "/admin/workers/update",
				Submit: "Update worker",
				Back:   "/admin/workers",
				Fields: []forms.Field{
					{Name: "id", Label: "Worker", Kind: "select", Options: a.workerOptions(), Reload: true},
					{Name: "_loaded", Kind: "hidden"},
					{Name: "name", Label: "Worker name", Kind: "text"},
					{Name: "phone", Label: "Phone", Kind: "text"},
					{Name: "email", Label: "Email", Kind: "email"},
					{Name: "status", Label: "Status", Kind: "select", Options: workerStatusOptions},
				},
			}
			rules := workerRules()
			rules["id"] = []validation.Rule{validation.Select("Worker")}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Workers.Update(ctx, draft["id"], models.Worker{
				ID:     draft["id"],
				Name:   draft["name"],
				Phone:  draft["phone"],
				Email:  draft["email"],
				Status: draft["status"],
			})
		},
		success: "Worker updated successfully",
		done:    "/admin/workers",
	}
}

func (a *App) EditWorker(c *gin.Context) {
	a.showForm(c, a.updateWorkerScreen(), map[string]string{"id": c.Query("id")})
}

func (a *App) UpdateWorker(c *gin.Context) { a.submitForm(c, a.updateWorkerScreen()) }

func (a *App) deleteWorkerScreen() deleteScreen {
	return deleteScreen{
		title:       "Delete worker",
		selectLabel: "Worker",
		action:      "/admin/workers/delete",
		back:        "/admin/workers",
		success:     "Worker deleted successfully",
		options:     a.workerOptions,
		details: func(id string) ([][2]string, bool) {
			w, ok := a.Stores.Workers.Find(id)
			if !ok {
				return nil, false
			}
			return [][2]string{
				{"ID", w.ID},
				{"Name", w.Name},
				{"Phone", w.Phone},
				{"Email", w.Email},
				{"Status", w.Status},
			}, true
		},
		blockers: func(id string) ([]string, string) {
			var blockers []string
			for _, s := range a.Stores.Assignments.Items() {
				if s.HasWorker(id) {
					blockers = append(blockers, "Assignment "+s.AssignmentID+" ("+s.Shift+" shift)")
				}
			}
			for _, p := range a.Stores.Pickups.Items() {
				if p.HasWorker(id) {
					blockers = append(blockers, "Pickup "+p.ID+" at "+p.Location)
				}
			}
			return blockers, "This worker still holds duty slots. Please reassign the work before deleting the worker."
		},
		perform: func(ctx context.Context, id string) error {
			return a.Stores.Workers.Delete(ctx, id)
		},
	}
}

func (a *App) ShowDeleteWorker(c *gin.Context) { a.showDelete(c, a.deleteWorkerScreen()) }
func (a *App) DeleteWorker(c *gin.Context)     { a.submitDelete(c, a.deleteWorkerScreen()) }

// WorkerHome shows the signed-in worker their current duty, derived from the
// live assignment and pickup caches rather than a dedicated endpoint.
func (a *App) WorkerHome(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	ctx := a.ctx(c)
	if err := a.Stores.Assignments.Refresh(ctx); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	if err := a.Stores.Pickups.Refresh(ctx); err != nil && a.handleUnauthorized(c, err) {
		return
	}

	data := gin.H{
		"Page":      a.page(c, "My duty"),
		"LoadError": a.Stores.Assignments.Err(),
	}
	if data["LoadError"] == "" {
		data["LoadError"] = a.Stores.Pickups.Err()
	}
	if data["LoadError"] == "" {
		data["LoadError"] = c.Query("error")
	}

	for _, s := range a.Stores.Assignments.Items() {
		if !s.HasWorker(sess.EmpID) {
			continue
		}
		data["Duty"] = "route"
		data["Assignment"] = s
		data["ZoneName"] = a.zoneName(s.Zone)
		if r, ok := a.Stores.Routes.Find(s.Route); ok {
			data["RouteName"] = r.Name
		} else {
			data["RouteName"] = s.Route
		}
		data["Partner"] = a.dutyPartnerName(s.AssignedWorkers, sess.EmpID)
		c.HTML(http.StatusOK, "home_worker", data)
		return
	}

	for _, p := range a.Stores.Pickups.Items() {
		if !p.HasWorker(sess.EmpID) {
			continue
		}
		partner := p.Worker1
		if partner == sess.EmpID {
			partner = p.Worker2
		}
		data["Duty"] = "pickup"
		data["Pickup"] = p
		data["ZoneName"] = a.zoneName(p.Zone)
		data["Partner"] = a.workerName(partner)
		c.HTML(http.StatusOK, "home_worker", data)
		return
	}

	data["Duty"] = "none"
	c.HTML(http.StatusOK, "home_worker", data)
}

// dutyVehicle resolves the vehicle attached to the signed-in worker's
// current route assignment.
func (a *App) dutyVehicle(empID string) (zoneID, vehicleID string, ok bool) {
	for _, s := range a.Stores.Assignments.Items() {
		if s.HasWorker(empID) {
			return s.Zone, s.Vehicle, true
		}
	}
	return "", "", false
}

// StartCollection opens a waste log for the crew's current run.
func (a *App) StartCollection(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	zoneID, vehicleID, ok := a.dutyVehicle(sess.EmpID)
	if !ok {
		c.Redirect(http.StatusFound, "/worker?error="+url.QueryEscape("No active route assignment."))
		return
	}

	err := a.API.WasteLogs().StartCollection(a.ctx(c), models.WasteLog{
		ZoneID:    zoneID,
		VehicleID: vehicleID,
		StartTime: time.Now().Format(time.RFC3339),
		Status:    "In Progress",
	})
	if err != nil {
		if a.handleUnauthorized(c, err) {
			return
		}
		c.Redirect(http.StatusFound, "/worker?error="+url.QueryEscape(api.ErrorMessage(err)))
		return
	}
	redirectWithFlash(c, "/worker", "Collection started")
}

// EndCollection closes the open waste log, recording the collected weight.
func (a *App) EndCollection(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	zoneID, vehicleID, ok := a.dutyVehicle(sess.EmpID)
	if !ok {
		c.Redirect(http.StatusFound, "/worker?error="+url.QueryEscape("No active route assignment."))
		return
	}

	weightValue := strings.TrimSpace(c.PostForm("weight"))
	if msg := validation.PositiveNumber("Collected weight")(weightValue); msg != "" {
		c.Redirect(http.StatusFound, "/worker?error="+url.QueryEscape(msg))
		return
	}
	weight, _ := strconv.ParseFloat(weightValue, 64)

	err := a.API.WasteLogs().EndCollection(a.ctx(c), models.WasteLog{
		ZoneID:    zoneID,
		VehicleID: vehicleID,
		EndTime:   time.Now().Format(time.RFC3339),
		Weight:    &weight,
		Status:    "Completed",
	})
	if err != nil {
		if a.handleUnauthorized(c, err) {
			return
		}
		c.Redirect(http.StatusFound, "/worker?error="+url.QueryEscape(api.ErrorMessage(err)))
		return
	}
	redirectWithFlash(c, "/worker", "Collection completed")
}

func (a *App) workerName(id string) string {
	if w, ok := a.Stores.Workers.Find(id); ok {
		return w.Name
	}
	return id
}

func (a *App) dutyPartnerName(workerIDs []string, self string) string {
	for _, id := range workerIDs {
		if id != self {
			return a.workerName(id)
		}
	}
	return ""
}
