package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

func (a *App) vehicleOptions() []forms.Option {
	opts := []forms.Option{}
	for _, v := range a.Stores.Vehicles.Items() {
		opts = append(opts, forms.Option{Value: v.ID, Label: v.ID + " - " + v.RegistrationNumber})
	}
	return opts
}

var vehicleStatusOptions = []forms.Option{
	{Value: models.VehicleStatusAvailable, Label: "Available"},
	{Value: models.VehicleStatusUnderMaintenance, Label: "Under maintenance"},
	{Value: models.VehicleStatusUnavailable, Label: "Unavailable"},
}

// VehicleDashboard lists the fleet with per-status counts.
func (a *App) VehicleDashboard(c *gin.Context) {
	vehicles := a.Stores.Vehicles.Items()
	byStatus := a.Stores.Vehicles.CountBy(func(v models.Vehicle) string { return strings.ToLower(v.Status) })
	stats := []Stat{
		{Label: "Total vehicles", Value: len(vehicles)},
		{Label: "Available", Value: byStatus[models.VehicleStatusAvailable]},
		{Label: "Under maintenance", Value: byStatus[models.VehicleStatusUnderMaintenance]},
		{Label: "Unavailable", Value: byStatus[models.VehicleStatusUnavailable]},
	}

	rows := make([]Row, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, Row{ID: v.ID, Cells: []string{v.ID, v.Type, v.RegistrationNumber, v.Status}})
	}

	a.renderResource(c, "Vehicle management", "/admin/vehicles", stats,
		[]string{"ID", "Type", "Registration number", "Status"}, rows, a.Stores.Vehicles.Err())
}

func (a *App) VehicleRefresh(c *gin.Context) {
	if err := a.Stores.Vehicles.Refresh(a.ctx(c)); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	c.Redirect(302, "/admin/vehicles")
}

func (a *App) createVehicleScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			form := &forms.Form{
				Title:  "Create vehicle",
				Action: "/admin/vehicles/create",
				Submit: "Create vehicle",
				Back:   "/admin/vehicles",
				Fields: []forms.Field{
					{Name: "type", Label: "Vehicle type", Kind: "select", Options: []forms.Option{
						{Value: models.VehicleTypeRouteTruck, Label: "Route truck"},
						{Value: models.VehicleTypePickupTruck, Label: "Pickup truck"},
					}},
					{Name: "registrationNumber", Label: "Registration number", Kind: "text", Placeholder: "e.g. KA01AB1234"},
					{Name: "status", Label: "Status", Kind: "select", Options: vehicleStatusOptions},
				},
			}
			rules := map[string][]validation.Rule{
				"type":               {validation.Select("Vehicle type")},
				"registrationNumber": {validation.Required("Registration number"), validation.RegistrationNumber()},
				"status":             {validation.Select("Status")},
			}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Vehicles.Create(ctx, models.Vehicle{
				Type:               draft["type"],
				RegistrationNumber: draft["registrationNumber"],
				Status:             draft["status"],
			})
		},
		success: "Vehicle created successfully",
		done:    "/admin/vehicles",
	}
}

func (a *App) NewVehicle(c *gin.Context) {
	a.showForm(c, a.createVehicleScreen(), map[string]string{})
}

func (a *App) CreateVehicle(c *gin.Context) { a.submitForm(c, a.createVehicleScreen()) }

func (a *App) updateVehicleScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			if id := draft["id"]; id != "" && id != draft["_loaded"] {
				if v, ok := a.Stores.Vehicles.Find(id); ok {
					draft["type"] = v.Type
					draft["registrationNumber"] = v.RegistrationNumber
					draft["status"] = v.Status
				}
				draft["_loaded"] = id
			}

			// Type is fixed at creation; the picker stays visible but inert.
			form := &forms.Form{
				Title:  "Update vehicle",
				Action: "/admin/vehicles/update",
				Submit: "Update vehicle",
				Back:   "/admin/vehicles",
				Fields: []forms.Field{
					{Name: "id", Label: "Vehicle", Kind: "select", Options: a.vehicleOptions(), Reload: true},
					{Name: "_loaded", Kind: "hidden"},
					{Name: "type", Label: "Vehicle type", Kind: "text", Disabled: true},
					{Name: "registrationNumber", Label: "Registration number", Kind: "text"},
					{Name: "status", Label: "Status", Kind: "select", Options: vehicleStatusOptions},
				},
			}
			rules := map[string][]validation.Rule{
				"id":                 {validation.Select("Vehicle")},
				"registrationNumber": {validation.Required("Registration number"), validation.RegistrationNumber()},
				"status":             {validation.Select("Status")},
			}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			// The type input is read-only in the browser; trust the cache,
			// not the posted value.
			vehicleType := draft["type"]
			if v, ok := a.Stores.Vehicles.Find(draft["id"]); ok {
				vehicleType = v.Type
			}
			return a.Stores.Vehicles.Update(ctx, draft["id"], models.Vehicle{
				ID:                 draft["id"],
				Type:               vehicleType,
				RegistrationNumber: draft["registrationNumber"],
				Status:             draft["status"],
			})
		},
		success: "Vehicle updated successfully",
		done:    "/admin/vehicles",
	}
}

func (a *App) EditVehicle(c *gin.Context) {
	a.showForm(c, a.updateVehicleScreen(), map[string]string{"id": c.Query("id")})
}

func (a *App) UpdateVehicle(c *gin.Context) { a.submitForm(c, a.updateVehicleScreen()) }

func (a *App) deleteVehicleScreen() deleteScreen {
	return deleteScreen{
		title:       "Delete vehicle",
		selectLabel: "Vehicle",
		action:      "/admin/vehicles/delete",
		back:        "/admin/vehicles",
		success:     "Vehicle deleted successfully",
		options:     a.vehicleOptions,
		details: func(id string) ([][2]string, bool) {
			v, ok := a.Stores.Vehicles.Find(id)
			if !ok {
				return nil, false
			}
			return [][2]string{
				{"ID", v.ID},
				{"Type", v.Type},
				{"Registration number", v.RegistrationNumber},
				{"Status", v.Status},
			}, true
		},
		blockers: func(id string) ([]string, string) {
			v, ok := a.Stores.Vehicles.Find(id)
			if !ok || !strings.EqualFold(v.Status, models.VehicleStatusUnavailable) {
				return nil, ""
			}
			return []string{v.ID + " is currently on an active assignment"},
				"Unavailable vehicles are in active use. Please complete or reassign their work before deleting."
		},
		perform: func(ctx context.Context, id string) error {
			return a.Stores.Vehicles.Delete(ctx, id)
		},
	}
}

func (a *App) ShowDeleteVehicle(c *gin.Context) { a.showDelete(c, a.deleteVehicleScreen()) }
func (a *App) DeleteVehicle(c *gin.Context)     { a.submitDelete(c, a.deleteVehicleScreen()) }
