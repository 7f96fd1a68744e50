package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/projhub/projhub-backend/internal/api/http"
	"github.com/projhub/projhub-backend/internal/api/http/middleware"
	projectshttp "github.com/projhub/projhub-backend/internal/projects/http"
	"github.com/projhub/projhub-backend/internal/projects/repository"
	"github.com/projhub/projhub-backend/internal/projects/service"
	"github.com/projhub/projhub-backend/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())
	r.SetHTMLTemplate(web.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	repo := repository.NewProjectRepository(dep.DB)
	svc := service.NewProjectService(repo)

	api := r.Group("/api/v1")
	projectsGroup := api.Group("/projects")
	projectshttp.New(svc).Register(projectsGroup)

	web.New(svc).Register(r)

	return r
}
