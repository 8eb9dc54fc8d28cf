package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/forms"
	"wastewise_portal/internal/validation"
)

// Stat is one aggregate card on a dashboard. Always recomputed from the
// store's current items, never cached.
type Stat struct {
	Label string
	Value any
}

// Row is one table line on a management dashboard.
type Row struct {
	ID    string
	Cells []string
}

// renderResource draws a management dashboard: stats, table, error banner
// with retry. The screen stays interactive even when the load failed.
func (a *App) renderResource(c *gin.Context, title, basePath string, stats []Stat, columns []string, rows []Row, errMsg string) {
	c.HTML(http.StatusOK, "resource", gin.H{
		"Page":     a.page(c, title),
		"Title":    title,
		"BasePath": basePath,
		"Stats":    stats,
		"Columns":  columns,
		"Rows":     rows,
		"Error":    errMsg,
	})
}

// formScreen wires one create/update screen into the shared submission
// pipeline. build derives the field set, filtered options and rule table
// from the current draft, clearing dependent values that fell out of their
// filtered option sets.
type formScreen struct {
	build   func(draft map[string]string) (*forms.Form, map[string][]validation.Rule)
	submit  func(ctx context.Context, draft map[string]string) error
	success string
	done    string
}

// showForm renders a form seeded with the given draft (GET path).
func (a *App) showForm(c *gin.Context, screen formScreen, seed map[string]string) {
	form, _ := screen.build(seed)
	form.Apply(seed)
	c.HTML(http.StatusOK, "form", gin.H{"Page": a.page(c, form.Title), "Form": form})
}

// submitForm is the POST half: reload round trips re-render with refiltered
// options; submissions validate first and only then reach the store. A
// validation failure never causes a network call.
func (a *App) submitForm(c *gin.Context, screen formScreen) {
	skeleton, _ := screen.build(map[string]string{})
	draft := skeleton.Draft(c)

	form, rules := screen.build(draft)
	form.Apply(draft)

	if forms.IsReload(c) {
		c.HTML(http.StatusOK, "form", gin.H{"Page": a.page(c, form.Title), "Form": form})
		return
	}

	result := form.Validate(draft, rules)
	if !result.IsValid {
		form.SetErrors(result.Errors)
		c.HTML(http.StatusOK, "form", gin.H{"Page": a.page(c, form.Title), "Form": form})
		return
	}

	if err := screen.submit(a.ctx(c), draft); err != nil {
		if a.handleUnauthorized(c, err) {
			return
		}
		form.Error = api.ErrorMessage(err)
		c.HTML(http.StatusOK, "form", gin.H{"Page": a.page(c, form.Title), "Form": form})
		return
	}

	redirectWithFlash(c, screen.done, screen.success)
}

// deleteScreen wires one destructive screen: pick a record, show its
// details plus any blocking dependents, require the typed confirmation, and
// refuse client-side while blockers exist. The backend stays authoritative;
// its refusal is surfaced verbatim.
type deleteScreen struct {
	title       string
	selectLabel string
	action      string
	back        string
	success     string
	options     func() []forms.Option
	details     func(id string) ([][2]string, bool)
	blockers    func(id string) ([]string, string)
	perform     func(ctx context.Context, id string) error
}

func (a *App) renderDelete(c *gin.Context, screen deleteScreen, selectedID, confirmErr, banner string) {
	var details [][2]string
	var blockers []string
	var note string
	if selectedID != "" {
		found := false
		details, found = screen.details(selectedID)
		if !found {
			selectedID = ""
			if banner == "" {
				banner = "Selected ID not found."
			}
		} else {
			blockers, note = screen.blockers(selectedID)
		}
	}
	c.HTML(http.StatusOK, "delete", gin.H{
		"Page":         a.page(c, screen.title),
		"Title":        screen.title,
		"SelectLabel":  screen.selectLabel,
		"Action":       screen.action,
		"Back":         screen.back,
		"Options":      screen.options(),
		"SelectedID":   selectedID,
		"Details":      details,
		"Blockers":     blockers,
		"BlockerNote":  note,
		"ConfirmError": confirmErr,
		"Error":        banner,
	})
}

func (a *App) showDelete(c *gin.Context, screen deleteScreen) {
	a.renderDelete(c, screen, c.Query("id"), "", "")
}

func (a *App) submitDelete(c *gin.Context, screen deleteScreen) {
	id := strings.TrimSpace(c.PostForm("id"))

	if forms.IsReload(c) {
		a.renderDelete(c, screen, id, "", "")
		return
	}
	if id == "" {
		a.renderDelete(c, screen, "", "", "Please select a record to delete.")
		return
	}
	if _, ok := screen.details(id); !ok {
		a.renderDelete(c, screen, "", "", "Selected ID not found.")
		return
	}
	if strings.TrimSpace(c.PostForm("confirm")) != "delete" {
		a.renderDelete(c, screen, id, `Type "delete" to confirm.`, "")
		return
	}
	if blockers, _ := screen.blockers(id); len(blockers) > 0 {
		a.renderDelete(c, screen, id, "", "Deletion refused: dependent records must be reassigned first.")
		return
	}

	if err := screen.perform(a.ctx(c), id); err != nil {
		if a.handleUnauthorized(c, err) {
			return
		}
		a.renderDelete(c, screen, id, "", api.ErrorMessage(err))
		return
	}

	redirectWithFlash(c, screen.back, screen.success)
}
