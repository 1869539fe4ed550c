package projects

import (
	"context"
	"errors"
	"net/http"

	"github.com/canvashq/canvas-backend/internal/auth"
	"github.com/canvashq/canvas-backend/internal/messages"
	"github.com/gin-gonic/gin"
)

// Store is what the handlers need from the persistence layer. *Repo
// implements it; tests swap in a fake.
type Store interface {
	Create(ctx context.Context, userDBID, name, description string) (*Project, error)
	List(ctx context.Context, userDBID string) ([]Project, error)
	Get(ctx context.Context, userDBID, publicID string) (*Project, error)
	Update(ctx context.Context, userDBID, publicID, name, description string) (*Project, error)
	SoftDelete(ctx context.Context, userDBID, publicID string) (bool, error)
	IsNameUnique(ctx context.Context, userDBID, name string) (bool, error)
}

type Handler struct {
	store     Store
	validator *NameValidator
	form      *Form
	fields    FieldConfig
}

// Register wires the project routes. limiter, when non-nil, throttles the
// name-check endpoint (it is hit on every keystroke of the name input).
func Register(rg *gin.RouterGroup, store Store, limiter gin.HandlerFunc) {
	v := NewNameValidator(store, CSSIdentifierPolicy{})
	h := &Handler{
		store:     store,
		validator: v,
		form:      NewForm(v),
		fields:    DefaultFieldConfig(),
	}

	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/form", h.formConfig)

	nameCheck := []gin.HandlerFunc{h.nameCheck}
	if limiter != nil {
		nameCheck = []gin.HandlerFunc{limiter, h.nameCheck}
	}
	rg.GET("/name-check", nameCheck...)

	rg.GET("/:public_id", h.get)
	rg.PATCH("/:public_id", h.update)
	rg.DELETE("/:public_id", h.delete)
}

type formReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	var req formReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": messages.InvalidRequestBody})
		return
	}

	ctx := c.Request.Context()
	userID := auth.UserDBID(c)

	cleaned, fieldErrs := h.form.Clean(ctx, FormInput{
		OwnerID:     userID,
		CurrentName: "",
		Name:        req.Name,
		Description: req.Description,
	})
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	p, err := h.store.Create(ctx, userID, cleaned.Name, cleaned.Description)
	if err != nil {
		// the partial unique index can still fire if a concurrent create won
		if errors.Is(err, ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": messages.ProjectNameMustBeUnique, "field": "name"})
			return
		}
		NewLogger(ctx).LogError("project_create", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.store.List(ctx, auth.UserDBID(c))
	if err != nil {
		NewLogger(ctx).LogError("project_list", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.store.Get(ctx, auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.ProjectNotFound})
			return
		}
		NewLogger(ctx).LogError("project_get", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	var req formReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": messages.InvalidRequestBody})
		return
	}

	ctx := c.Request.Context()
	userID := auth.UserDBID(c)
	publicID := c.Param("public_id")

	current, err := h.store.Get(ctx, userID, publicID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.ProjectNotFound})
			return
		}
		NewLogger(ctx).LogError("project_update_load", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not load project"})
		return
	}

	cleaned, fieldErrs := h.form.Clean(ctx, FormInput{
		OwnerID:     userID,
		CurrentName: current.Name,
		Name:        req.Name,
		Description: req.Description,
	})
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	p, err := h.store.Update(ctx, userID, publicID, cleaned.Name, cleaned.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.ProjectNotFound})
		case errors.Is(err, ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": messages.ProjectNameMustBeUnique, "field": "name"})
		default:
			NewLogger(ctx).LogError("project_update", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not update project"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	ctx := c.Request.Context()
	ok, err := h.store.SoftDelete(ctx, auth.UserDBID(c), c.Param("public_id"))
	if err != nil {
		NewLogger(ctx).LogError("project_delete", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not delete project"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": messages.ProjectNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// formConfig serves the declarative widget attributes for the project form.
func (h *Handler) formConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "fields": h.fields})
}

// nameCheck is the live availability probe behind the name input. It runs
// the full validation pipeline and always answers 200 for a decided name,
// so the frontend can show inline feedback without treating 4xx as failure.
func (h *Handler) nameCheck(c *gin.Context) {
	ctx := c.Request.Context()

	accepted, err := h.validator.Validate(ctx, c.Query("name"), auth.UserDBID(c), c.Query("current"))
	if err != nil {
		var symErr *InvalidSymbolError
		if errors.Is(err, ErrDuplicateName) || errors.As(err, &symErr) {
			c.JSON(http.StatusOK, gin.H{"ok": true, "available": false, "field": "name", "error": err.Error()})
			return
		}
		NewLogger(ctx).LogError("project_name_check", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not check name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "available": true, "name": accepted})
}

func respondFieldErrors(c *gin.Context, fieldErrs []FieldError) {
	status := http.StatusUnprocessableEntity
	for _, fe := range fieldErrs {
		if errors.Is(fe.Err, ErrDuplicateName) {
			status = http.StatusConflict
			continue
		}
		var symErr *InvalidSymbolError
		if !errors.As(fe.Err, &symErr) {
			// not a validation verdict: the uniqueness source failed
			NewLogger(c.Request.Context()).LogError("project_form_clean", fe.Err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not validate project"})
			return
		}
	}

	c.JSON(status, gin.H{
		"ok":     false,
		"error":  fieldErrs[0].Message,
		"field":  fieldErrs[0].Field,
		"errors": fieldErrs,
	})
}
