// Package controllers renders the portal's screens and drives the
// validate-submit-refresh pipeline against the resource stores.
package controllers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/config"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/session"
	"wastewise_portal/internal/store"
)

// App is the explicit dependency container every screen reads from.
type App struct {
	Cfg      *config.Config
	API      *api.Client
	Stores   *store.Stores
	Sessions *session.Manager
}

func NewApp(cfg *config.Config, client *api.Client, stores *store.Stores, sessions *session.Manager) *App {
	return &App{Cfg: cfg, API: client, Stores: stores, Sessions: sessions}
}

type NavLink struct {
	Label string
	Href  string
}

// Page is the chrome every template receives.
type Page struct {
	Title    string
	UserName string
	Role     string
	Theme    string
	Flash    string
	Active   string
	Nav      []NavLink
}

func navFor(role string) []NavLink {
	switch role {
	case models.RoleAdmin:
		return []NavLink{
			{Label: "Dashboard", Href: "/admin"},
			{Label: "Workers", Href: "/admin/workers"},
			{Label: "Zones", Href: "/admin/zones"},
			{Label: "Routes", Href: "/admin/routes"},
			{Label: "Vehicles", Href: "/admin/vehicles"},
			{Label: "Assignments", Href: "/admin/assignments"},
		}
	case models.RoleScheduler:
		return []NavLink{{Label: "Pickups", Href: "/scheduler"}}
	case models.RoleWorker:
		return []NavLink{{Label: "My duty", Href: "/worker"}}
	}
	return nil
}

func (a *App) page(c *gin.Context, title string) Page {
	p := Page{
		Title:  title,
		Theme:  "light",
		Flash:  c.Query("flash"),
		Active: c.Request.URL.Path,
	}
	if s := middleware.SessionFrom(c); s != nil {
		p.UserName = s.Name
		p.Role = s.Role
		if s.Theme != "" {
			p.Theme = s.Theme
		}
		p.Nav = navFor(s.Role)
	}
	return p
}

// ctx attaches the session's bearer token to the request context so every
// backend call inherits it; its absence simply omits the header.
func (a *App) ctx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if s := middleware.SessionFrom(c); s != nil && s.Token != "" {
		ctx = api.WithToken(ctx, s.Token)
	}
	return ctx
}

// roleHome maps a role to its landing screen.
func roleHome(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleScheduler:
		return "/scheduler"
	case models.RoleWorker:
		return "/worker"
	}
	return "/signin"
}

// handleUnauthorized clears the session on a backend 401 and forces the
// sign-in screen. Returns true when it consumed the error.
func (a *App) handleUnauthorized(c *gin.Context, err error) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	a.Sessions.Clear(c)
	c.Redirect(http.StatusFound, "/signin?error="+url.QueryEscape("Session expired. Please login again."))
	c.Abort()
	return true
}

func redirectWithFlash(c *gin.Context, path, flash string) {
	c.Redirect(http.StatusFound, path+"?flash="+url.QueryEscape(flash))
}
