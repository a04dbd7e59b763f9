package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Assessly/internal/dto"
	"github.com/lshigami/Assessly/internal/service"
	"github.com/rs/zerolog/log"
)

type ReferenceController struct {
	references service.ReferenceService
}

func NewReferenceController(references service.ReferenceService) *ReferenceController {
	return &ReferenceController{references: references}
}

func (c *ReferenceController) RegisterRoutes(users *gin.RouterGroup) {
	users.GET("/:user_id/references", c.ListReferences)
	users.POST("/:user_id/references", c.CreateReference)
	users.DELETE("/:user_id/references/:reference_id", c.DeleteReference)
}

// ListReferences godoc
// @Summary List saved reference materials
// @Tags References
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.ReferenceResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/references [get]
func (c *ReferenceController) ListReferences(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	items, err := c.references.List(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve references", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateReference godoc
// @Summary Save a reference file or link
// @Description A file is stored as a data URL, a link as an http(s) URL.
// @Tags References
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param reference body dto.ReferenceCreateRequest true "Reference item"
// @Success 201 {object} dto.ReferenceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/references [post]
func (c *ReferenceController) CreateReference(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	var req dto.ReferenceCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("CreateReference: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: validationDetails(err)})
		return
	}
	item, err := c.references.Create(userID, req)
	if errors.Is(err, service.ErrInvalidReference) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid reference item", Details: []string{err.Error()}})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save reference", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// DeleteReference godoc
// @Summary Delete a saved reference
// @Tags References
// @Param user_id path int true "User ID"
// @Param reference_id path int true "Reference ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Reference not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/references/{reference_id} [delete]
func (c *ReferenceController) DeleteReference(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	refID, err := strconv.ParseUint(ctx.Param("reference_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Reference ID format"})
		return
	}
	err = c.references.Delete(userID, uint(refID))
	if errors.Is(err, service.ErrReferenceNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint64("referenceID", refID).Msg("DeleteReference: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete reference"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
