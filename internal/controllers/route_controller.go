package controllers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

func (a *App) routeOptions() []forms.Option {
	opts := []forms.Option{}
	for _, r := range a.Stores.Routes.Items() {
		opts = append(opts, forms.Option{Value: r.ID, Label: r.ID + " - " + r.Name})
	}
	return opts
}

func (a *App) zoneName(id string) string {
	if z, ok := a.Stores.Zones.Find(id); ok {
		return z.Name
	}
	return id
}

// RouteDashboard lists the routes with zone names resolved from the zone
// cache rather than a second backend call.
func (a *App) RouteDashboard(c *gin.Context) {
	routes := a.Stores.Routes.Items()
	stats := []Stat{
		{Label: "Total routes", Value: len(routes)},
		{Label: "Zones covered", Value: a.Stores.Routes.UniqueCount(func(r models.Route) string { return r.ZoneID })},
		{Label: "Routes in use", Value: a.Stores.Assignments.UniqueCount(func(s models.Assignment) string { return s.Route })},
	}

	rows := make([]Row, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, Row{ID: r.ID, Cells: []string{
			r.ID, r.Name, a.zoneName(r.ZoneID), r.PathDetails, r.EstimatedTime,
		}})
	}

	a.renderResource(c, "Route management", "/admin/routes", stats,
		[]string{"ID", "Name", "Zone", "Path details", "Estimated time"}, rows, a.Stores.Routes.Err())
}

func (a *App) RouteRefresh(c *gin.Context) {
	if err := a.Stores.Routes.Refresh(a.ctx(c)); err != nil && a.handleUnauthorized(c, err) {
		return
	}
	c.Redirect(302, "/admin/routes")
}

func (a *App) routeFields() []forms.Field {
	return []forms.Field{
		{Name: "zoneId", Label: "Zone", Kind: "select", Options: a.zoneOptions()},
		{Name: "name", Label: "Route name", Kind: "text", Placeholder: "e.g. North Loop"},
		{Name: "pathDetails", Label: "Path details", Kind: "text", Placeholder: "Streets and landmarks covered"},
		{Name: "estimatedTime", Label: "Estimated time", Kind: "text", Placeholder: "e.g. 2 hours or 45 minutes"},
	}
}

func routeRules() map[string][]validation.Rule {
	return map[string][]validation.Rule{
		"zoneId":        {validation.Select("Zone")},
		"name":          {validation.Required("Route name"), validation.MinLen(2, "Route name")},
		"pathDetails":   {validation.Required("Path details")},
		"estimatedTime": {validation.Required("Estimated time"), validation.EstimatedTime()},
	}
}

func (a *App) createRouteScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			form := &forms.Form{
				Title:  "Create route",
				Action: "/admin/routes/create",
				Submit: "Create route",
				Back:   "/admin/routes",
				Fields: a.routeFields(),
			}
			return form, routeRules()
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Routes.Create(ctx, models.Route{
				ZoneID:        draft["zoneId"],
				Name:          draft["name"],
				PathDetails:   draft["pathDetails"],
				EstimatedTime: draft["estimatedTime"],
			})
		},
		success: "Route created successfully",
		done:    "/admin/routes",
	}
}

func (a *App) NewRoute(c *gin.Context)    { a.showForm(c, a.createRouteScreen(), map[string]string{}) }
func (a *App) CreateRoute(c *gin.Context) { a.submitForm(c, a.createRouteScreen()) }

func (a *App) updateRouteScreen() formScreen {
	return formScreen{
		build: func(draft map[string]string) (*forms.Form, map[string][]validation.Rule) {
			if id := draft["id"]; id != "" && id != draft["_loaded"] {
				if r, ok := a.Stores.Routes.Find(id); ok {
					draft["zoneId"] = r.ZoneID
					draft["name"] = r.Name
					draft["pathDetails"] = r.PathDetails
					draft["estimatedTime"] = r.EstimatedTime
				}
				draft["_loaded"] = id
			}

			fields := append([]forms.Field{
				{Name: "id", Label: "Route", Kind: "select", Options: a.routeOptions(), Reload: true},
				{Name: "_loaded", Kind: "hidden"},
			}, a.routeFields()...)

			form := &forms.Form{
				Title:  "Update route",
				Action: "/admin/routes/update",
				Submit: "Update route",
				Back:   "/admin/routes",
				Fields: fields,
			}
			rules := routeRules()
			rules["id"] = []validation.Rule{validation.Select("Route")}
			return form, rules
		},
		submit: func(ctx context.Context, draft map[string]string) error {
			return a.Stores.Routes.Update(ctx, draft["id"], models.Route{
				ID:            draft["id"],
				ZoneID:        draft["zoneId"],
				Name:          draft["name"],
				PathDetails:   draft["pathDetails"],
				EstimatedTime: draft["estimatedTime"],
			})
		},
		success: "Route updated successfully",
		done:    "/admin/routes",
	}
}

func (a *App) EditRoute(c *gin.Context) {
	a.showForm(c, a.updateRouteScreen(), map[string]string{"id": c.Query("id")})
}

func (a *App) UpdateRoute(c *gin.Context) { a.submitForm(c, a.updateRouteScreen()) }

func (a *App) deleteRouteScreen() deleteScreen {
	return deleteScreen{
		title:       "Delete route",
		selectLabel: "Route",
		action:      "/admin/routes/delete",
		back:        "/admin/routes",
		success:     "Route deleted successfully",
		options:     a.routeOptions,
		details: func(id string) ([][2]string, bool) {
			r, ok := a.Stores.Routes.Find(id)
			if !ok {
				return nil, false
			}
			return [][2]string{
				{"ID", r.ID},
				{"Name", r.Name},
				{"Zone", a.zoneName(r.ZoneID)},
				{"Path details", r.PathDetails},
				{"Estimated time", r.EstimatedTime},
			}, true
		},
		blockers: func(id string) ([]string, string) {
			assigned := a.Stores.Assignments.Filter(func(s models.Assignment) bool {
				return s.Route == id
			})
			blockers := make([]string, 0, len(assigned))
			for _, s := range assigned {
				blockers = append(blockers, fmt.Sprintf("%s (%s shift)", s.AssignmentID, s.Shift))
			}
			return blockers, "The following assignments use this route. Please reassign or remove them before deleting the route."
		},
		perform: func(ctx context.Context, id string) error {
			return a.Stores.Routes.Delete(ctx, id)
		},
	}
}

func (a *App) ShowDeleteRoute(c *gin.Context) { a.showDelete(c, a.deleteRouteScreen()) }
func (a *App) DeleteRoute(c *gin.Context)     { a.submitDelete(c, a.deleteRouteScreen()) }
