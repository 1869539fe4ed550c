package canvases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canvashq/canvas-backend/internal/auth"
	"github.com/canvashq/canvas-backend/internal/messages"
	"github.com/canvashq/canvas-backend/internal/projects"
)

// Store is the persistence surface the handlers need; *Repo implements it.
type Store interface {
	Create(ctx context.Context, userDBID, projectPublicID, title string, content json.RawMessage) (*Canvas, error)
	ListByProject(ctx context.Context, userDBID, projectPublicID string) ([]Canvas, error)
	Get(ctx context.Context, userDBID, projectPublicID, canvasID string) (*Canvas, error)
	Update(ctx context.Context, userDBID, projectPublicID, canvasID, title string, content json.RawMessage) (*Canvas, error)
	Delete(ctx context.Context, userDBID, projectPublicID, canvasID string) (bool, error)
}

type Handler struct {
	store Store
}

// RegisterProjectSubroutes mounts canvas routes under the projects group.
func RegisterProjectSubroutes(rg *gin.RouterGroup, store Store) {
	h := &Handler{store: store}

	rg.POST("/:public_id/canvases", h.create)
	rg.GET("/:public_id/canvases", h.list)
	rg.GET("/:public_id/canvases/:canvas_id", h.get)
	rg.PUT("/:public_id/canvases/:canvas_id", h.update)
	rg.DELETE("/:public_id/canvases/:canvas_id", h.delete)
}

type canvasReq struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

func (h *Handler) create(c *gin.Context) {
	var req canvasReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": messages.InvalidRequestBody})
		return
	}

	cv, err := h.store.Create(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.ProjectNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not create canvas"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "canvas": cv})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.ListByProject(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not list canvases"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "canvases": items})
}

func (h *Handler) get(c *gin.Context) {
	cv, err := h.store.Get(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), c.Param("canvas_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.CanvasNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load canvas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "canvas": cv})
}

func (h *Handler) update(c *gin.Context) {
	var req canvasReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": messages.InvalidRequestBody})
		return
	}

	cv, err := h.store.Update(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), c.Param("canvas_id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.CanvasNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not update canvas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "canvas": cv})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.store.Delete(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), c.Param("canvas_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not delete canvas"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.CanvasNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
