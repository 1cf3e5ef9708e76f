package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scentpress-backend/internal/domains/note"
	"scentpress-backend/internal/shared/response"
	"scentpress-backend/internal/shared/upload"
)

type NoteHandler struct {
	service note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler {
	return &NoteHandler{service: svc}
}

// Add handles POST /note/addNote
func (h *NoteHandler) Add(c *gin.Context) {
	var form note.NoteForm
	_ = c.ShouldBind(&form)

	created, err := h.service.Create(c.Request.Context(), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, note.ToHTTPStatus(err), "NOTE_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Note added successfully", created)
}

// GetAll handles GET /note/getAllNotes
func (h *NoteHandler) GetAll(c *gin.Context) {
	notes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to fetch notes")
		return
	}
	response.Success(c, http.StatusOK, "Success", notes)
}

// GetBySlug handles GET /note/getNoteBySlug/:slug
func (h *NoteHandler) GetBySlug(c *gin.Context) {
	n, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to fetch note")
		}
		return
	}
	response.Success(c, http.StatusOK, "Success", n)
}

// Update handles PUT /note/updateNote/:id
func (h *NoteHandler) Update(c *gin.Context) {
	var form note.NoteForm
	_ = c.ShouldBind(&form)

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &form, upload.FromContext(c))
	if err != nil {
		response.ErrorResponse(c, note.ToHTTPStatus(err), "NOTE_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Note updated successfully", updated)
}

// Delete handles DELETE /note/deleteNote/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid note id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, note.ToHTTPStatus(err), "NOTE_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, "Note deleted successfully", deleted)
}
