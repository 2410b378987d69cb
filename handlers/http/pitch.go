package httpHandler

import (
	"net/http"

	"pitchcraft-server/apperr"
	"pitchcraft-server/usecases"

	"github.com/gin-gonic/gin"
)

type PitchHandler struct {
	useCase *usecases.PitchUseCase
}

func NewPitchHandler(useCase *usecases.PitchUseCase) *PitchHandler {
	return &PitchHandler{useCase: useCase}
}

type generateRequest struct {
	IdeaDescription string `json:"idea_description"`
}

type improveRequest struct {
	Improvements string `json:"improvements"`
}

// Generate handles POST /pitches/generate
func (h *PitchHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	user := currentUser(c)

	generated, err := h.useCase.Generate(c.Request.Context(), user.ID, req.IdeaDescription)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Pitch generated successfully", gin.H{
		"pitch":    generated.Pitch,
		"fallback": generated.Fallback,
	})
}

// List handles GET /pitches
func (h *PitchHandler) List(c *gin.Context) {
	user := currentUser(c)

	pitches, err := h.useCase.List(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Pitches retrieved successfully", gin.H{
		"count":   len(pitches),
		"pitches": pitches,
	})
}

// GetByID handles GET /pitches/:id
func (h *PitchHandler) GetByID(c *gin.Context) {
	user := currentUser(c)

	pitch, err := h.useCase.Get(c.Param("id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Pitch retrieved successfully", pitch)
}

// Update handles PUT /pitches/:id
func (h *PitchHandler) Update(c *gin.Context) {
	var update usecases.PitchUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	user := currentUser(c)

	pitch, err := h.useCase.Update(c.Param("id"), user.ID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Pitch updated successfully", pitch)
}

// Improve handles POST /pitches/:id/improve
func (h *PitchHandler) Improve(c *gin.Context) {
	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	user := currentUser(c)

	pitch, err := h.useCase.Improve(c.Request.Context(), c.Param("id"), user.ID, req.Improvements)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Pitch improved successfully", pitch)
}

// Export handles POST /pitches/:id/export
func (h *PitchHandler) Export(c *gin.Context) {
	user := currentUser(c)

	pitch, err := h.useCase.Export(c.Param("id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Pitch marked as exported", pitch)
}

// Delete handles DELETE /pitches/:id
func (h *PitchHandler) Delete(c *gin.Context) {
	user := currentUser(c)

	if err := h.useCase.Delete(c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Pitch deleted successfully", nil)
}
