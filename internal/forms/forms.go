// Package forms carries the screen-side half of the validate-submit-refresh
// pipeline: field descriptors the templates render, draft parsing, and the
// dependent-field rules the assignment and pickup screens share.
package forms

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/validation"
)

type Option struct {
	Value string
	Label string
}

// Field is one rendered input. Reload marks a select whose change re-submits
// the form for option refiltering instead of a real submit.
type Field struct {
	Name        string
	Label       string
	Kind        string // text, email, password, time, select
	Placeholder string
	Options     []Option
	Value       string
	Error       string
	Reload      bool
	Disabled    bool
}

// Form is the draft a screen renders and re-renders until submission
// succeeds. It is local state, independent of the stores' caches.
type Form struct {
	Title  string
	Action string
	Submit string
	Back   string
	Fields []Field
	Error  string // banner for non-field failures
	Notice string
}

// Draft reads the form's current values from a POST body, trimmed.
func (f *Form) Draft(c *gin.Context) map[string]string {
	draft := map[string]string{}
	for _, field := range f.Fields {
		draft[field.Name] = strings.TrimSpace(c.PostForm(field.Name))
	}
	return draft
}

// Apply copies draft values back onto the fields for re-rendering.
func (f *Form) Apply(draft map[string]string) {
	for i := range f.Fields {
		f.Fields[i].Value = draft[f.Fields[i].Name]
	}
}

// SetErrors attaches a validation result's field errors.
func (f *Form) SetErrors(errs map[string]string) {
	for i := range f.Fields {
		f.Fields[i].Error = errs[f.Fields[i].Name]
	}
}

// Validate runs the rule table over the draft.
func (f *Form) Validate(draft map[string]string, rules map[string][]validation.Rule) validation.Result {
	return validation.Run(draft, rules)
}

func (f *Form) Field(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// IsReload reports whether this POST is an option-refiltering round trip
// (a Reload select changed) rather than a submission.
func IsReload(c *gin.Context) bool {
	return c.PostForm("_action") == "reload"
}

// HasOption reports whether value is offered by opts.
func HasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ClearDependent empties the dependent field's draft value when it is no
// longer in the filtered option set (e.g. the chosen route after the zone
// changed, or worker 2 after worker 1 took its id).
func ClearDependent(draft map[string]string, field string, opts []Option) {
	if draft[field] != "" && !HasOption(opts, draft[field]) {
		draft[field] = ""
	}
}

// Exclude removes one value from an option set; used to keep worker 1's
// choice out of the worker 2 picker.
func Exclude(opts []Option, value string) []Option {
	if value == "" {
		return opts
	}
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if o.Value != value {
			out = append(out, o)
		}
	}
	return out
}
