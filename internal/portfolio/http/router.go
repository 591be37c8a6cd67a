package http

import (
	"github.com/gin-gonic/gin"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

// RegisterPublic mounts the read-only site routes and the contact form.
// contact middleware (rate limiting) only applies to the contact route.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup, contact ...gin.HandlerFunc) {
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/featured", h.FeaturedProjects)
	rg.GET("/projects/:id", h.GetProject)
	rg.GET("/categories", h.ListCategories)
	rg.GET("/skills", h.GroupedSkills)
	rg.GET("/experiences", h.ListExperiences)
	rg.POST("/contact", append(contact, h.SubmitContact)...)
}

// RegisterAdmin mounts the management routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)

	resource[domain.Project, domain.ProjectPatch]{h: h, name: "project", plural: "projects",
		pick: func(f *portfolio.Facade) portfolio.Projects { return f.Projects() },
	}.register(rg.Group("/projects"), true)

	resource[domain.Skill, domain.SkillPatch]{h: h, name: "skill", plural: "skills",
		pick: func(f *portfolio.Facade) portfolio.Skills { return f.Skills() },
	}.register(rg.Group("/skills"), true)

	resource[domain.Experience, domain.ExperiencePatch]{h: h, name: "experience", plural: "experiences",
		pick: func(f *portfolio.Facade) portfolio.Experiences { return f.Experiences() },
	}.register(rg.Group("/experiences"), true)

	resource[domain.Category, domain.CategoryPatch]{h: h, name: "category", plural: "categories",
		pick: func(f *portfolio.Facade) portfolio.Categories { return f.Categories() },
	}.register(rg.Group("/categories"), true)

	// messages are created only through the contact form
	messages := resource[domain.ContactMessage, domain.MessagePatch]{h: h, name: "message", plural: "messages",
		pick: func(f *portfolio.Facade) portfolio.Messages { return f.Messages() },
		list: h.listMessages,
	}
	messages.register(rg.Group("/messages"), false)
}
