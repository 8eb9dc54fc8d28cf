package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

func (a *App) pickupOptions() []forms.Option {
	opts := []forms.Option{}
	for _, p := range a.Stores.Pickups.Items() {
		opts = append(opts, forms.Option{Value: p.ID, Label: p.ID + " - " + p.Location})
	}
	return opts
}

var frequencyOptions = []forms.Option{
	{Value: models.FrequencyDaily, Label: "Daily"},
	{Value: models.FrequencyWeekly, Label: "Weekly"},
	{Value: models.FrequencyMonthly, Label: "Monthly"},
}

// PickupDashboard lists the scheduled pickups with per-frequency counts.
func (a *App) PickupDashboard(c *gin.Context) {
	pickups := a.Stores.Pickups.Items()
	byFrequency := a.Stores.Pickups.CountBy(func(p models.Pickup) string { return p.Frequency })
	stats := []Stat{
		{Label: "Total pickups", Value: len(pickups)},
		{Label: "Daily", Value: byFrequency[models.FrequencyDaily]},
		{Label: "Weekly", Value: byFrequency[models.FrequencyWeekly]},
		{Label: "Monthly", Value: byFrequency[models.FrequencyMonthly]},
	}

	rows := make([]Row, 0, len(pickups))
	for _, p := range pickups {
		rows = append(rows, Row{ID: p.ID, Cells: []string{
			p.ID, a.zoneName(p.Zone), p.Location, p.StartTime + " - " + p.EndTime,
			p.Frequency, p.Vehicle, a.workerName(p.Worker1) + ", " + a.workerName(p.Worker2), p.Status,
		}})
	}

	a.renderResource(c, "Pickup scheduling", "/scheduler/pickups", stats,
		[]string{"ID", "Zone", "Location", "Time slot", "Frequency", "Vehicle", "Workers", "Status"},
		rows, a.Stores.Pickups.Err())
}

func (a *App) PickupRefresh(c *gin.Context) {
	if err := a.Stores.Pickups.Refresh(a.ctx(c)); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	c.Redirect(302, "/scheduler/pickups")
}

// pickupFields mirrors the assignment form's dependent pickers, with a
// pickup truck pool and a time slot instead of a route.
func (a *App) pickupFields(draft map[string]string, include models.Pickup) []forms.Field {
	vehicleOpts := a.truckOptions(models.VehicleTypePickupTruck, include.Vehicle)
	forms.ClearDependent(draft, "vehicleId", vehicleOpts)

	workerOpts := a.availableWorkerOptions(include.Worker1, include.Worker2)
	worker2Opts := forms.Exclude(workerOpts, draft["worker1"])
	forms.ClearDependent(draft, "worker2", worker2Opts)

	return []forms.Field{
		{Name: "zoneId", Label: "Zone", Kind: "select", Options: a.zoneOptions()},
		{Name: "location", Label: "Location", Kind: "text", Placeholder: "Street address or landmark"},
		{Name: "startTime", Label: "Start time", Kind: "time"},
		{Name: "endTime", Label: "End time", Kind: "time"},
		{Name: "frequency", Label: "Frequency", Kind: "select", Options: frequencyOptions},
		{Name: "vehicleId", Label: "Vehicle", Kind: "select", Options: vehicleOpts},
		{Name: "worker1", Label: "Worker 1", Kind: "select", Options: workerOpts, Reload: true},
		{Name: "worker2", Label: "Worker 2", Kind: "select", Options: worker2Opts},
	}
}

func pickupRules(draft map[string]string) map[string][]validation.Rule {
	return map[string][]validation.Rule{
		"zoneId":    {validation.Select("Zone")},
		"location":  {validation.Required("Location"), validation.MinLen(2, "Location")},
		"startTime": {validation.Required("Start time")},
		"endTime": {
			validation.Required("End time"),
			func(v string) string { return validation.MinDuration(draft["startTime"], v, 60) },
		},
		"frequency": {validation.Select("Frequency")},
		"vehicleId": {validation.Select("Vehicle")},
		"worker1":   {validation.Select("Worker 1")},
		"worker2": {
			validation.Select("Worker 2"),
			validation.DistinctFrom(func() string { return draft["worker1"] },
				"Worker 2 must be different from Worker 1"),
		},
	}
}

func pickupFromDraft(draft map[string]string, status string) models.Pickup {
	return models.Pickup{
		ID:        draft["id"],
		Zone:      draft["zoneId"],
		Location:  draft["location"],
		StartTime: draft["startTime"],
		EndTime:   draft["endTime"],
		Frequency: draft["frequency"],
		Vehicle:   draft["vehicleId"],
		Worker1:   draft["worker1"],
		Worker2:   draft["worker2"],
		Status:    status,
	}
}

func (a *App) createPickupScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			form := &forms.Form{
				Title:  "Schedule pickup",
				Action: "/scheduler/pickups/create",
				Submit: "Schedule pickup",
				Back:   "/scheduler/pickups",
				Fields: a.pickupFields(draft, models.Pickup{}),
			}
			return form, pickupRules(draft)
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Pickups.Create(ctx, pickupFromDraft(draft, "Scheduled"))
		},
		success: "Pickup scheduled successfully",
		done:    "/scheduler/pickups",
	}
}

func (a *App) NewPickup(c *gin.Context)    { a.showForm(c, a.createPickupScreen(), map[string]string{}) }
func (a *App) CreatePickup(c *gin.Context) { a.submitForm(c, a.createPickupScreen()) }

func (a *App) updatePickupScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			var current models.Pickup
			if id := draft["id"]; id != "" {
				current, _ = a.Stores.Pickups.Find(id)
				if id != draft["_loaded"] {
					draft["zoneId"] = current.Zone
					draft["location"] = current.Location
					draft["startTime"] = current.StartTime
					draft["endTime"] = current.EndTime
					draft["frequency"] = current.Frequency
					draft["vehicleId"] = current.Vehicle
					draft["worker1"] = current.Worker1
					draft["worker2"] = current.Worker2
					draft["_loaded"] = id
				}
			}

			fields := append([]forms.Field{
				{Name: "id", Label: "Pickup", Kind: "select", Options: a.pickupOptions(), Reload: true},
				{Name: "_loaded", Kind: "hidden"},
			}, a.pickupFields(draft, current)...)

			form := &forms.Form{
				Title:  "Update pickup",
				Action: "/scheduler/pickups/update",
				Submit: "Update pickup",
				Back:   "/scheduler/pickups",
				Fields: fields,
			}
			rules := pickupRules(draft)
			rules["id"] = []validation.Rule{validation.Select("Pickup")}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			status := "Scheduled"
			if p, ok := a.Stores.Pickups.Find(draft["id"]); ok && p.Status != "" {
				status = p.Status
			}
			return a.Stores.Pickups.Update(ctx, draft["id"], pickupFromDraft(draft, status))
		},
		success: "Pickup updated successfully",
		done:    "/scheduler/pickups",
	}
}

func (a *App) EditPickup(c *gin.Context) {
	a.showForm(c, a.updatePickupScreen(), map[string]string{"id": c.Query("id")})
}

func (a *App) UpdatePickup(c *gin.Context) { a.submitForm(c, a.updatePickupScreen()) }

func (a *App) deletePickupScreen() deleteScreen {
	return deleteScreen{
		title:       "Delete pickup",
		selectLabel: "Pickup",
		action:      "/scheduler/pickups/delete",
		back:        "/scheduler/pickups",
		success:     "Pickup deleted successfully",
		options:     a.pickupOptions,
		details: func(id string) ([][2]string, bool) {
			p, ok := a.Stores.Pickups.Find(id)
			if !ok {
				return nil, false
			}
			return [][2]string{
				{"ID", p.ID},
				{"Zone", a.zoneName(p.Zone)},
				{"Location", p.Location},
				{"Time slot", p.StartTime + " - " + p.EndTime},
				{"Frequency", p.Frequency},
				{"Vehicle", p.Vehicle},
				{"Workers", a.workerName(p.Worker1) + ", " + a.workerName(p.Worker2)},
				{"Status", p.Status},
			}, true
		},
		blockers: func(id string) ([]string, string) {
			// Removing a pickup frees its crew and truck; nothing depends on it.
			return nil, ""
		},
		perform: func(ctx context.Context, id string) error {
			return a.Stores.Pickups.Delete(ctx, id)
		},
	}
}

func (a *App) ShowDeletePickup(c *gin.Context) { a.showDelete(c, a.deletePickupScreen()) }
func (a *App) DeletePickup(c *gin.Context)     { a.submitDelete(c, a.deletePickupScreen()) }
