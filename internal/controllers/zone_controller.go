package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

func (a *App) zoneOptions() []forms.Option {
	opts := []forms.Option{}
	for _, z := range a.Stores.Zones.Items() {
		opts = append(opts, forms.Option{Value: z.ID, Label: z.ID + " - " + z.Name})
	}
	return opts
}

// ZoneDashboard lists the zones with their derived counts.
func (a *App) ZoneDashboard(c *gin.Context) {
	zones := a.Stores.Zones.Items()
	stats := []Stat{
		{Label: "Total zones", Value: len(zones)},
		{Label: "Active zones", Value: a.Stores.Zones.CountWhere(func(z models.Zone) bool {
			return strings.EqualFold(z.Status, "active")
		})},
		{Label: "Zones with routes", Value: a.Stores.Routes.UniqueCount(func(r models.Route) string { return r.ZoneID })},
	}

	rows := make([]Row, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, Row{ID: z.ID, Cells: []string{z.ID, z.Name, z.AreaCoverage, z.Status}})
	}

	a.renderResource(c, "Zone management", "/admin/zones", stats,
		[]string{"ID", "Name", "Area coverage", "Status"}, rows, a.Stores.Zones.Err())
}

func (a *App) ZoneRefresh(c *gin.Context) {
	if err := a.Stores.Zones.Refresh(a.ctx(c)); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	c.Redirect(302, "/admin/zones")
}

func (a *App) createZoneScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			form := &forms.Form{
				Title:  "Create zone",
				Action: "/admin/zones/create",
				Submit: "Create zone",
				Back:   "/admin/zones",
				Fields: []forms.Field{
					{Name: "name", Label: "Zone name", Kind: "text", Placeholder: "e.g. Downtown"},
					{Name: "areaCoverage", Label: "Area coverage", Kind: "text", Placeholder: "e.g. 10 sq km"},
				},
			}
			rules := map[string][]validation.Rule{
				"name":         {validation.Required("Zone name"), validation.MinLen(2, "Zone name")},
				"areaCoverage": {validation.Required("Area coverage")},
			}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Zones.Create(ctx, models.Zone{
				Name:         draft["name"],
				AreaCoverage: draft["areaCoverage"],
				Status:       "Active",
			})
		},
		success: "Zone created successfully",
		done:    "/admin/zones",
	}
}

func (a *App) NewZone(c *gin.Context)    { a.showForm(c, a.createZoneScreen(), map[string]string{}) }
func (a *App) CreateZone(c *gin.Context) { a.submitForm(c, a.createZoneScreen()) }

func (a *App) updateZoneScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			// Reseed the draft whenever a different zone is picked.
			if id := draft["id"]; id != "" && id != draft["_loaded"] {
				if z, ok := a.Stores.Zones.Find(id); ok {
					draft["name"] = z.Name
					draft["areaCoverage"] = z.AreaCoverage
					draft["status"] = z.Status
				}
				draft["_loaded"] = id
			}

			form := &forms.Form{
				Title:  "Update zone",
				Action: "/admin/zones/update",
				Submit: "Update zone",
				Back:   "/admin/zones",
				Fields: []forms.Field{
					{Name: "id", Label: "Zone", Kind: "select", Options: a.zoneOptions(), Reload: true},
					{Name: "_loaded", Kind: "hidden"},
					{Name: "name", Label: "Zone name", Kind: "text"},
					{Name: "areaCoverage", Label: "Area coverage", Kind: "text"},
					{Name: "status", Label: "Status", Kind: "select", Options: []forms.Option{
						{Value: "Active", Label: "Active"},
						{Value: "Inactive", Label: "Inactive"},
					}},
				},
			}
			rules := map[string][]validation.Rule{
				"id":           {validation.Select("Zone")},
				"name":         {validation.Required("Zone name"), validation.MinLen(2, "Zone name")},
				"areaCoverage": {validation.Required("Area coverage")},
				"status":       {validation.Select("Status")},
			}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Zones.Update(ctx, draft["id"], models.Zone{
				ID:           draft["id"],
				Name:         draft["name"],
				AreaCoverage: draft["areaCoverage"],
				Status:       draft["status"],
			})
		},
		success: "Zone updated successfully",
		done:    "/admin/zones",
	}
}

func (a *App) EditZone(c *gin.Context) {
	seed := map[string]string{"id": c.Query("id")}
	a.showForm(c, a.updateZoneScreen(), seed)
}

func (a *App) UpdateZone(c *gin.Context) { a.submitForm(c, a.updateZoneScreen()) }

func (a *App) deleteZoneScreen() deleteScreen {
	return deleteScreen{
		title:       "Delete zone",
		selectLabel: "Zone",
		action:      "/admin/zones/delete",
		back:        "/admin/zones",
		success:     "Zone deleted successfully",
		options:     a.zoneOptions,
		details: func(id string) ([][2]string, bool) {
			z, ok := a.Stores.Zones.Find(id)
			if !ok {
				return nil, false
			}
			return [][2]string{
				{"ID", z.ID},
				{"Name", z.Name},
				{"Area coverage", z.AreaCoverage},
				{"Status", z.Status},
			}, true
		},
		blockers: func(id string) ([]string, string) {
			routes := a.Stores.Routes.Filter(func(r models.Route) bool { return r.ZoneID == id })
			blockers := make([]string, 0, len(routes))
			for _, r := range routes {
				blockers = append(blockers, fmt.Sprintf("%s - %q", r.ID, r.Name))
			}
			return blockers, "The following routes are assigned to this zone. Please unassign them before deleting the zone."
		},
		perform: func(ctx context.Context, id string) error {
			return a.Stores.Zones.Delete(ctx, id)
		},
	}
}

func (a *App) ShowDeleteZone(c *gin.Context) { a.showDelete(c, a.deleteZoneScreen()) }
func (a *App) DeleteZone(c *gin.Context)     { a.submitDelete(c, a.deleteZoneScreen()) }
