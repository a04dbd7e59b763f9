package controller

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Assessly/config"
	"github.com/lshigami/Assessly/internal/dto"
	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/service"
	"github.com/rs/zerolog/log"
)

const pdfMIMEType = "application/pdf"

type AssessmentController struct {
	workspace          service.WorkspaceService
	maxAttachmentBytes int64
}

func NewAssessmentController(workspace service.WorkspaceService, cfg *config.Config) *AssessmentController {
	return &AssessmentController{workspace: workspace, maxAttachmentBytes: cfg.Attachment.MaxBytes}
}

func (c *AssessmentController) RegisterRoutes(users *gin.RouterGroup) {
	users.POST("/:user_id/criteria-levels", c.GenerateCriteriaLevels)
	users.POST("/:user_id/key-points", c.GenerateKeyPoints)
	users.POST("/:user_id/materials", c.GenerateMaterials)
	users.GET("/:user_id/materials", c.GetMaterials)
	users.DELETE("/:user_id/materials", c.ResetMaterials)
	users.GET("/:user_id/operations", c.GetOperations)
}

func toPlan(req dto.AssessmentPlanDTO) (model.AssessmentPlan, error) {
	var plan model.AssessmentPlan
	if err := copier.Copy(&plan, &req); err != nil {
		return plan, fmt.Errorf("error mapping assessment plan: %w", err)
	}
	return plan, nil
}

// bindPlan binds the request body and maps it to the domain plan, writing the error response itself.
func bindPlan(ctx *gin.Context) (model.AssessmentPlan, bool) {
	var req dto.AssessmentPlanDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind assessment plan")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: validationDetails(err)})
		return model.AssessmentPlan{}, false
	}
	plan, err := toPlan(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return model.AssessmentPlan{}, false
	}
	return plan, true
}

// GenerateCriteriaLevels godoc
// @Summary Generate achievement level criteria
// @Description Generates 상/중/하 achievement descriptions from the plan's achievement standard and key points.
// @Tags Generation
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param plan body dto.AssessmentPlanDTO true "Assessment plan; achievementStandard and keyPoints are required"
// @Success 200 {object} dto.LevelCriteriaDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or no API key registered"
// @Failure 401 {object} dto.ErrorResponse "API key rejected; the stored key has been removed"
// @Failure 502 {object} dto.ErrorResponse "Generation failed"
// @Router /users/{user_id}/criteria-levels [post]
func (c *AssessmentController) GenerateCriteriaLevels(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	plan, ok := bindPlan(ctx)
	if !ok {
		return
	}

	levels, err := c.workspace.GenerateCriteriaLevels(ctx.Request.Context(), userID, plan)
	if err != nil {
		respondGenerationError(ctx, err)
		return
	}
	var resp dto.LevelCriteriaDTO
	copier.Copy(&resp, levels)
	ctx.JSON(http.StatusOK, resp)
}

// GenerateKeyPoints godoc
// @Summary Generate teaching and assessment key points
// @Description Generates one teaching point and one assessment point. keyPoints in the response is the combined text for the plan.
// @Tags Generation
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param plan body dto.AssessmentPlanDTO true "Assessment plan; subject, domain, assessmentMethod, assessmentElements and achievementStandard are required"
// @Success 200 {object} dto.KeyPointsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or no API key registered"
// @Failure 401 {object} dto.ErrorResponse "API key rejected; the stored key has been removed"
// @Failure 502 {object} dto.ErrorResponse "Generation failed"
// @Router /users/{user_id}/key-points [post]
func (c *AssessmentController) GenerateKeyPoints(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	plan, ok := bindPlan(ctx)
	if !ok {
		return
	}

	kp, err := c.workspace.GenerateKeyPoints(ctx.Request.Context(), userID, plan)
	if err != nil {
		respondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyPointsResponse{
		TeachingPoints:   kp.TeachingPoints,
		AssessmentPoints: kp.AssessmentPoints,
		KeyPoints:        kp.Format(),
	})
}

// decodeAttachment turns the request attachment into a verified PDF.
func (c *AssessmentController) decodeAttachment(a *dto.AttachmentDTO) (*model.Attachment, int, error) {
	data, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("attachment is not valid base64: %w", err)
	}
	if c.maxAttachmentBytes > 0 && int64(len(data)) > c.maxAttachmentBytes {
		return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("attachment is %d bytes, limit is %d", len(data), c.maxAttachmentBytes)
	}
	if detected := mimetype.Detect(data); !detected.Is(pdfMIMEType) {
		return nil, http.StatusUnsupportedMediaType, fmt.Errorf("attachment content is %s, only PDF files are accepted", detected.String())
	}
	return &model.Attachment{Data: data, MIMEType: pdfMIMEType}, 0, nil
}

// GenerateMaterials godoc
// @Summary Generate full assessment materials
// @Description Generates criteria, a 2-3 criterion rubric, a scoring summary and example answers for a task given as text, a PDF attachment, or both. The result replaces the user's current materials.
// @Tags Generation
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body dto.GenerateMaterialsRequest true "Plan, task text and optional base64 PDF"
// @Success 200 {object} model.GeneratedData
// @Failure 400 {object} dto.ErrorResponse "Invalid input or no API key registered"
// @Failure 401 {object} dto.ErrorResponse "API key rejected; the stored key has been removed"
// @Failure 413 {object} dto.ErrorResponse "Attachment too large"
// @Failure 415 {object} dto.ErrorResponse "Attachment is not a PDF"
// @Failure 502 {object} dto.ErrorResponse "Generation failed"
// @Router /users/{user_id}/materials [post]
func (c *AssessmentController) GenerateMaterials(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	var req dto.GenerateMaterialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("GenerateMaterials: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: validationDetails(err)})
		return
	}
	plan, err := toPlan(req.Plan)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
		return
	}

	task := model.TaskInput{Text: req.Task.Text}
	if req.Attachment != nil {
		att, status, err := c.decodeAttachment(req.Attachment)
		if err != nil {
			log.Warn().Err(err).Uint("userID", userID).Msg("GenerateMaterials: Rejected attachment")
			ctx.JSON(status, dto.ErrorResponse{Message: "Invalid attachment", Details: []string{err.Error()}})
			return
		}
		task.Attachment = att
	}

	data, err := c.workspace.GenerateMaterials(ctx.Request.Context(), userID, plan, task)
	if err != nil {
		respondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// GetMaterials godoc
// @Summary Get the current materials
// @Description Returns the materials from the user's latest successful generation.
// @Tags Generation
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} model.GeneratedData
// @Failure 404 {object} dto.ErrorResponse "Nothing generated yet"
// @Router /users/{user_id}/materials [get]
func (c *AssessmentController) GetMaterials(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	data, found := c.workspace.LatestMaterials(userID)
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No materials have been generated"})
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// ResetMaterials godoc
// @Summary Discard the current materials
// @Tags Generation
// @Param user_id path int true "User ID"
// @Success 204
// @Router /users/{user_id}/materials [delete]
func (c *AssessmentController) ResetMaterials(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	c.workspace.Reset(userID)
	ctx.Status(http.StatusNoContent)
}

// GetOperations godoc
// @Summary Get generation operation states
// @Description Returns the state of the latest run of each generation operation.
// @Tags Generation
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} service.Run
// @Router /users/{user_id}/operations [get]
func (c *AssessmentController) GetOperations(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.workspace.Operations(userID))
}
