package drafts

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canvashq/canvas-backend/internal/auth"
	"github.com/canvashq/canvas-backend/internal/messages"
)

// Store is the draft persistence surface; *Repo implements it.
type Store interface {
	Save(ctx context.Context, userDBID, projectPublicID string, d Draft) (*Draft, error)
	Get(ctx context.Context, userDBID, projectPublicID string) (*Draft, error)
	Delete(ctx context.Context, userDBID, projectPublicID string) (bool, error)
}

type Handler struct {
	store Store
}

// RegisterProjectSubroutes mounts the draft routes under the projects
// group. The public id "new" addresses the create-project form, which has
// no project row yet.
func RegisterProjectSubroutes(rg *gin.RouterGroup, store Store) {
	h := &Handler{store: store}

	rg.PUT("/:public_id/draft", h.save)
	rg.GET("/:public_id/draft", h.get)
	rg.DELETE("/:public_id/draft", h.delete)
}

type saveReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": messages.InvalidRequestBody})
		return
	}

	d, err := h.store.Save(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"), Draft{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not save draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d})
}

func (h *Handler) get(c *gin.Context) {
	d, err := h.store.Get(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.DraftNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d})
}

func (h *Handler) delete(c *gin.Context) {
	ok, err := h.store.Delete(c.Request.Context(), auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not discard draft"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.DraftNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
