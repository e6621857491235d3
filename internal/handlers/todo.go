package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kikerikiki/ToDoApp/internal/dto"
	"github.com/kikerikiki/ToDoApp/internal/service"

	"github.com/gin-gonic/gin"
)

const listingPath = "/api/v1/todos"

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      Current and upcoming todos, grouped by month and week
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.GroupedTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	groups, err := h.svc.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromMonthGroups(groups))
}

// Past godoc
// @Summary      Todos of the previous calendar month, grouped by month and week
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.GroupedTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/past [get]
func (h *TodoHandler) Past(c *gin.Context) {
	groups, err := h.svc.Past(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromMonthGroups(groups))
}

// Create godoc
// @Summary      Create a todo
// @Description  On success redirects to the current listing. On validation
// @Description  failure the submitted values come back unchanged for correction.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTodoRequest  true  "Todo body"
// @Success      303
// @Failure      400  {object}  map[string]any
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "submitted": req})
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.DueDate.Ptr())
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "submitted": req})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, listingPath)
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Description  Serves the detail view and the edit/delete prefill.
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromTodo(t))
}

// Update godoc
// @Summary      Apply an edit (full field set)
// @Description  The payload id must match the path id and updated_at must
// @Description  carry the value read with the prefill; a concurrent write in
// @Description  between is rejected with 409, a concurrent delete with 404.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Todo ID"
// @Param        body  body  dto.EditTodoRequest  true  "Full field set"
// @Success      303
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EditTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "submitted": req})
		return
	}
	_, err := h.svc.Update(c.Request.Context(), id, service.UpdateInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate.Ptr(),
		IsCompleted: req.IsCompleted,
		UpdatedAt:   req.UpdatedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "submitted": req})
		case errors.Is(err, service.ErrStaleWrite):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Redirect(http.StatusSeeOther, listingPath)
}

// Toggle godoc
// @Summary      Flip a todo's completion flag
// @Description  A missing id is not an error; the redirect happens either way.
// @Tags         todos
// @Param        id  path  int  true  "Todo ID"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Toggle(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, listingPath)
}

// Delete godoc
// @Summary      Delete a todo
// @Description  Unguarded: callers are expected to have fetched the todo via
// @Description  GET /todos/{id} first. A missing row is a fault, not a 404.
// @Tags         todos
// @Param        id  path  int  true  "Todo ID"
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, listingPath)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
