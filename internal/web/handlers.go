package web

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projhub/projhub-backend/internal/projects/domain"
	"github.com/projhub/projhub-backend/internal/projects/service"
)

const fillAllFields = "Please fill in all fields."

// Handler renders the form-based UI: an add view and a searchable dashboard.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches the UI routes to the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.dashboard)
	r.GET("/new", h.addForm)
	r.POST("/projects", h.create)
	r.POST("/projects/:id/update", h.update)
	r.POST("/projects/:id/delete", h.delete)
}

type formData struct {
	Name        string
	Description string
}

type projectView struct {
	ID   int64
	Name string
	// Description is rendered unescaped: project descriptions may embed
	// markup (links, formatting) on purpose.
	Description    template.HTML
	RawDescription string
	AddedOn        string
	Editing        bool
}

type viewData struct {
	Active   string
	Flash    string
	Warn     string
	Error    string
	Keyword  string
	Form     formData
	Projects []projectView
}

func (h *Handler) dashboard(c *gin.Context) {
	keyword := c.Query("q")
	editID, _ := strconv.ParseInt(c.Query("edit"), 10, 64)

	data := viewData{
		Active:  "dashboard",
		Flash:   c.Query("flash"),
		Warn:    c.Query("warn"),
		Keyword: keyword,
	}

	items, err := h.svc.List(c.Request.Context(), keyword)
	if err != nil {
		data.Error = "Could not load projects: " + err.Error()
		c.HTML(http.StatusInternalServerError, "dashboard.html", data)
		return
	}

	data.Projects = make([]projectView, 0, len(items))
	for _, p := range items {
		data.Projects = append(data.Projects, projectView{
			ID:             p.ID,
			Name:           p.Name,
			Description:    template.HTML(p.Description),
			RawDescription: p.Description,
			AddedOn:        p.CreatedAt.Format("2006-01-02"),
			Editing:        p.ID == editID,
		})
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (h *Handler) addForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", viewData{
		Active: "add",
		Flash:  c.Query("flash"),
		Warn:   c.Query("warn"),
	})
}

func (h *Handler) create(c *gin.Context) {
	form := formData{
		Name:        c.PostForm("project_name"),
		Description: c.PostForm("description"),
	}

	p, err := h.svc.Create(c.Request.Context(), form.Name, form.Description)
	if err != nil {
		data := viewData{Active: "add", Form: form}
		if errors.Is(err, domain.ErrEmptyField) {
			data.Warn = fillAllFields
			c.HTML(http.StatusOK, "add.html", data)
			return
		}
		data.Error = "Could not save project: " + err.Error()
		c.HTML(http.StatusInternalServerError, "add.html", data)
		return
	}

	redirect(c, "/new", url.Values{"flash": {"Project '" + p.Name + "' added successfully!"}})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/", url.Values{"warn": {"Project not found."}})
		return
	}

	keyword := c.PostForm("q")
	name := c.PostForm("project_name")
	description := c.PostForm("description")

	if _, err := h.svc.Update(c.Request.Context(), id, name, description); err != nil {
		v := url.Values{"q": {keyword}}
		switch {
		case errors.Is(err, domain.ErrEmptyField):
			v.Set("edit", strconv.FormatInt(id, 10))
			v.Set("warn", fillAllFields)
		case errors.Is(err, domain.ErrNotFound):
			v.Set("warn", "Project not found.")
		default:
			v.Set("warn", "Could not update project: "+err.Error())
		}
		redirect(c, "/", v)
		return
	}

	redirect(c, "/", url.Values{"q": {keyword}, "flash": {"Project updated successfully!"}})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirect(c, "/", url.Values{"warn": {"Project not found."}})
		return
	}

	keyword := c.PostForm("q")

	ok, err := h.svc.Delete(c.Request.Context(), id)
	v := url.Values{"q": {keyword}}
	switch {
	case err != nil:
		v.Set("warn", "Could not delete project: "+err.Error())
	case !ok:
		v.Set("warn", "Project not found.")
	default:
		v.Set("warn", "Project deleted!")
	}
	redirect(c, "/", v)
}

func redirect(c *gin.Context, path string, v url.Values) {
	if q := v.Encode(); q != "" {
		path += "?" + q
	}
	c.Redirect(http.StatusSeeOther, path)
}
