package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
	"github.com/personalweb/portfolio-backend/internal/portfolio/service"
)

// ListProjects filters by ?category=<slug>.
func (h *Handler) ListProjects(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	projects, err := h.svc.ProjectsByCategory(c.Request.Context(), f, c.Query("category"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": nonNil(projects)})
}

func (h *Handler) FeaturedProjects(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	limit := service.HomeFeaturedLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}
	projects, err := h.svc.FeaturedProjects(c.Request.Context(), f, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) GetProject(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	p, err := f.Projects().FetchOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) ListCategories(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	cats, err := f.Categories().FetchAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": nonNil(cats)})
}

func (h *Handler) GroupedSkills(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	groups, err := h.svc.SkillsByCategory(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skills": groups})
}

// ListExperiences filters by ?type=work|education.
func (h *Handler) ListExperiences(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	typ := domain.ExperienceType(c.Query("type"))
	if typ != "" && typ != domain.ExperienceWork && typ != domain.ExperienceEducation {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "type must be work or education"})
		return
	}
	exps, err := h.svc.Experiences(c.Request.Context(), f, typ)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experiences": nonNil(exps)})
}

func (h *Handler) SubmitContact(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	var in service.ContactSubmission
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}
	msg, err := h.svc.SubmitMessage(c.Request.Context(), f, in)
	saved, warning := persisted(err)
	if !saved {
		h.respondError(c, err)
		return
	}
	body := gin.H{"ok": true, "id": msg.ID}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusCreated, body)
}

func (h *Handler) Dashboard(c *gin.Context) {
	f, ok := h.facade(c)
	if !ok {
		return
	}
	d, err := h.svc.Dashboard(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "dashboard": d})
}

func (h *Handler) listMessages(c *gin.Context, f *portfolio.Facade) ([]domain.ContactMessage, error) {
	return h.svc.Messages(c.Request.Context(), f)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
