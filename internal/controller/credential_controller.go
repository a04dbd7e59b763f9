package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Assessly/internal/dto"
	"github.com/lshigami/Assessly/internal/service"
	"github.com/rs/zerolog/log"
)

type CredentialController struct {
	credentials service.CredentialService
}

func NewCredentialController(credentials service.CredentialService) *CredentialController {
	return &CredentialController{credentials: credentials}
}

func (c *CredentialController) RegisterRoutes(users *gin.RouterGroup) {
	users.PUT("/:user_id/credential", c.SaveCredential)
	users.GET("/:user_id/credential", c.GetCredentialStatus)
	users.DELETE("/:user_id/credential", c.DeleteCredential)
}

// SaveCredential godoc
// @Summary Register the user's Gemini API key
// @Description Stores or replaces the key used for the user's generation requests.
// @Tags Credential
// @Accept json
// @Param user_id path int true "User ID"
// @Param credential body dto.CredentialRequest true "API key"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/credential [put]
func (c *CredentialController) SaveCredential(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	var req dto.CredentialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// The body holds the key; log only the failure.
		log.Warn().Uint("userID", userID).Msg("SaveCredential: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: validationDetails(err)})
		return
	}
	if err := c.credentials.Save(userID, req.APIKey); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to save API key", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetCredentialStatus godoc
// @Summary Check whether an API key is registered
// @Tags Credential
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.CredentialStatusResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/credential [get]
func (c *CredentialController) GetCredentialStatus(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	configured, err := c.credentials.IsConfigured(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetCredentialStatus: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to read API key status"})
		return
	}
	ctx.JSON(http.StatusOK, dto.CredentialStatusResponse{Configured: configured})
}

// DeleteCredential godoc
// @Summary Remove the user's API key
// @Tags Credential
// @Param user_id path int true "User ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/credential [delete]
func (c *CredentialController) DeleteCredential(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	if err := c.credentials.Invalidate(userID); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("DeleteCredential: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to remove API key"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
