package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
)

// resource serves the admin CRUD routes of one collection.
type resource[T any, P any] struct {
	h      *Handler
	name   string
	plural string
	pick   func(*portfolio.Facade) portfolio.Collection[T, P]
	// list overrides FetchAll for the list route.
	list func(c *gin.Context, f *portfolio.Facade) ([]T, error)
}

func (r resource[T, P]) register(rg *gin.RouterGroup, withCreate bool) {
	rg.GET("", r.listAll)
	rg.GET("/:id", r.get)
	if withCreate {
		rg.POST("", r.create)
	}
	rg.PATCH("/:id", r.update)
	rg.DELETE("/:id", r.remove)
}

func (r resource[T, P]) listAll(c *gin.Context) {
	f, ok := r.h.facade(c)
	if !ok {
		return
	}
	var (
		items []T
		err   error
	)
	if r.list != nil {
		items, err = r.list(c, f)
	} else {
		items, err = r.pick(f).FetchAll(c.Request.Context())
	}
	if err != nil {
		r.h.respondError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, r.plural: items})
}

func (r resource[T, P]) get(c *gin.Context) {
	f, ok := r.h.facade(c)
	if !ok {
		return
	}
	rec, err := r.pick(f).FetchOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, r.name: rec})
}

func (r resource[T, P]) create(c *gin.Context) {
	f, ok := r.h.facade(c)
	if !ok {
		return
	}
	var in T
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body", "details": err.Error()})
		return
	}

	rec, err := r.pick(f).Create(c.Request.Context(), in)
	saved, warning := persisted(err)
	if !saved {
		r.h.respondError(c, err)
		return
	}
	body := gin.H{"ok": true, r.name: rec}
	if warning != "" {
		body["warning"] = warning
		c.JSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusCreated, body)
}

// update answers 200 with changed=false when the id does not exist.
func (r resource[T, P]) update(c *gin.Context) {
	f, ok := r.h.facade(c)
	if !ok {
		return
	}
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body", "details": err.Error()})
		return
	}

	rec, found, err := r.pick(f).Update(c.Request.Context(), c.Param("id"), patch)
	saved, warning := persisted(err)
	if !saved {
		r.h.respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"ok": true, "changed": false})
		return
	}
	body := gin.H{"ok": true, "changed": true, r.name: rec}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}

func (r resource[T, P]) remove(c *gin.Context) {
	f, ok := r.h.facade(c)
	if !ok {
		return
	}
	found, err := r.pick(f).Delete(c.Request.Context(), c.Param("id"))
	saved, warning := persisted(err)
	if !saved {
		r.h.respondError(c, err)
		return
	}
	body := gin.H{"ok": true, "changed": found}
	if warning != "" {
		body["warning"] = warning
	}
	c.JSON(http.StatusOK, body)
}
