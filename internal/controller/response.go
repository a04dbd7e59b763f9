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

// User-facing messages for generation failures.
const (
	msgMissingCredential = "API 키를 먼저 등록해 주세요."
	msgInvalidCredential = "API 키가 유효하지 않습니다. 키를 다시 등록해 주세요."
	msgInvalidInput      = "입력값을 확인해 주세요."
	msgGenerationFailed  = "생성 중 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
)

func parseUserID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
		return 0, false
	}
	return uint(id), true
}

// respondGenerationError maps a pipeline failure to a status. Backend details stay in the logs.
func respondGenerationError(ctx *gin.Context, err error) {
	var ge *service.GenerationError
	if !errors.As(err, &ge) {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Generation request failed before reaching the pipeline")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: msgGenerationFailed})
		return
	}

	details := []string{string(ge.Kind)}
	switch ge.Kind {
	case service.MissingCredential:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msgMissingCredential, Details: details})
	case service.InvalidInput:
		if ge.Err != nil {
			details = append(details, ge.Err.Error())
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: msgInvalidInput, Details: details})
	case service.InvalidCredential:
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: msgInvalidCredential, Details: details})
	default:
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: msgGenerationFailed, Details: details})
	}
}
