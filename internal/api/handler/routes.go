package handler

import (
	"net/http"

	"github.com/vfg2006/portfolio-admin-api/internal/api/handler/router"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/analyzing"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/cataloging"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/content"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/profiling"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/publishing"
	"github.com/vfg2006/portfolio-admin-api/internal/usecases/showcasing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Content retorna as rotas do conteúdo singleton do site (sobre e hero da home)
func Content(service content.ContentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content/about",
			Method:  http.MethodGet,
			Handler: GetAbout(service),
		},
		{
			Path:    "/v1/content/about",
			Method:  http.MethodPut,
			Handler: UpdateAbout(service),
		},
		{
			Path:    "/v1/content/about/image",
			Method:  http.MethodPost,
			Handler: UploadAboutImage(service),
		},
		{
			Path:    "/v1/content/about/resume",
			Method:  http.MethodPost,
			Handler: UploadResume(service),
		},
		{
			Path:    "/v1/content/home-hero",
			Method:  http.MethodGet,
			Handler: GetHomeHero(service),
		},
		{
			Path:    "/v1/content/home-hero",
			Method:  http.MethodPut,
			Handler: UpdateHomeHero(service),
		},
		{
			Path:    "/v1/content/home-hero/image",
			Method:  http.MethodPost,
			Handler: UploadHeroImage(service),
		},
	}
}

// Articles retorna as rotas administrativas dos artigos do blog
func Articles(service publishing.ArticleService, recorder analyzing.VisitRecorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/articles",
			Method:  http.MethodGet,
			Handler: ListArticles(service),
		},
		{
			Path:    "/v1/articles",
			Method:  http.MethodPost,
			Handler: CreateArticle(service),
		},
		{
			Path:    "/v1/articles/:id",
			Method:  http.MethodGet,
			Handler: GetArticle(service),
		},
		{
			Path:    "/v1/articles/:id",
			Method:  http.MethodPut,
			Handler: UpdateArticle(service),
		},
		{
			Path:    "/v1/articles/:id",
			Method:  http.MethodDelete,
			Handler: DeleteArticle(service),
		},
		{
			Path:    "/v1/articles/:id/thumbnail",
			Method:  http.MethodPost,
			Handler: UploadArticleThumbnail(service),
		},
		{
			Path:    "/v1/articles/:id/read-time",
			Method:  http.MethodPost,
			Handler: RecordArticleReadTime(service, recorder),
		},
	}
}

// Projects retorna as rotas administrativas dos projetos do portfólio
func Projects(service showcasing.ShowcaseService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects",
			Method:  http.MethodGet,
			Handler: ListProjects(service),
		},
		{
			Path:    "/v1/projects",
			Method:  http.MethodPost,
			Handler: CreateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodGet,
			Handler: GetProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodPut,
			Handler: UpdateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProject(service),
		},
		{
			Path:    "/v1/projects/:id/image",
			Method:  http.MethodPost,
			Handler: UploadProjectImage(service),
		},
	}
}

// TechStacks retorna as rotas administrativas das tecnologias
func TechStacks(service showcasing.ShowcaseService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tech-stacks",
			Method:  http.MethodGet,
			Handler: ListTechStacks(service),
		},
		{
			Path:    "/v1/tech-stacks",
			Method:  http.MethodPost,
			Handler: CreateTechStack(service),
		},
		{
			Path:    "/v1/tech-stacks/:id",
			Method:  http.MethodGet,
			Handler: GetTechStack(service),
		},
		{
			Path:    "/v1/tech-stacks/:id",
			Method:  http.MethodPut,
			Handler: UpdateTechStack(service),
		},
		{
			Path:    "/v1/tech-stacks/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTechStack(service),
		},
		{
			Path:    "/v1/tech-stacks/:id/icon",
			Method:  http.MethodPost,
			Handler: UploadTechStackIcon(service),
		},
	}
}

// Experiences retorna as rotas administrativas das experiências profissionais
func Experiences(service profiling.ProfileService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/experiences",
			Method:  http.MethodGet,
			Handler: ListExperiences(service),
		},
		{
			Path:    "/v1/experiences",
			Method:  http.MethodPost,
			Handler: CreateExperience(service),
		},
		{
			Path:    "/v1/experiences/:id",
			Method:  http.MethodGet,
			Handler: GetExperience(service),
		},
		{
			Path:    "/v1/experiences/:id",
			Method:  http.MethodPut,
			Handler: UpdateExperience(service),
		},
		{
			Path:    "/v1/experiences/:id",
			Method:  http.MethodDelete,
			Handler: DeleteExperience(service),
		},
	}
}

// Testimonials retorna as rotas administrativas dos depoimentos
func Testimonials(service profiling.ProfileService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/testimonials",
			Method:  http.MethodGet,
			Handler: ListTestimonials(service),
		},
		{
			Path:    "/v1/testimonials",
			Method:  http.MethodPost,
			Handler: CreateTestimonial(service),
		},
		{
			Path:    "/v1/testimonials/:id",
			Method:  http.MethodGet,
			Handler: GetTestimonial(service),
		},
		{
			Path:    "/v1/testimonials/:id",
			Method:  http.MethodPut,
			Handler: UpdateTestimonial(service),
		},
		{
			Path:    "/v1/testimonials/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTestimonial(service),
		},
		{
			Path:    "/v1/testimonials/:id/photo",
			Method:  http.MethodPost,
			Handler: UploadTestimonialPhoto(service),
		},
	}
}

// Catalog retorna as rotas administrativas dos serviços e pacotes de preço
func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: ListServices(service),
		},
		{
			Path:    "/v1/services",
			Method:  http.MethodPost,
			Handler: CreateService(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodGet,
			Handler: GetService(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodPut,
			Handler: UpdateService(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodDelete,
			Handler: DeleteService(service),
		},
		{
			Path:    "/v1/services/:id/icon",
			Method:  http.MethodPost,
			Handler: UploadServiceIcon(service),
		},
		{
			Path:    "/v1/services/:id/packages",
			Method:  http.MethodGet,
			Handler: ListServicePackages(service),
		},
		{
			Path:    "/v1/packages",
			Method:  http.MethodPost,
			Handler: CreatePackage(service),
		},
		{
			Path:    "/v1/packages/:id",
			Method:  http.MethodGet,
			Handler: GetPackage(service),
		},
		{
			Path:    "/v1/packages/:id",
			Method:  http.MethodPut,
			Handler: UpdatePackage(service),
		},
		{
			Path:    "/v1/packages/:id",
			Method:  http.MethodDelete,
			Handler: DeletePackage(service),
		},
	}
}

// Visitors retorna as rotas de ingestão de eventos e consulta de métricas
func Visitors(service analyzing.VisitorAnalyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/visitors/events",
			Method:  http.MethodPost,
			Handler: RecordVisit(service),
		},
		{
			Path:    "/v1/visitors/trends",
			Method:  http.MethodGet,
			Handler: GetVisitorTrends(service),
		},
		{
			Path:    "/v1/visitors/overview",
			Method:  http.MethodGet,
			Handler: GetVisitorOverview(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
