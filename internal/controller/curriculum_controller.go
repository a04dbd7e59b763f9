package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Assessly/internal/curriculum"
	"github.com/lshigami/Assessly/internal/dto"
)

type CurriculumController struct{}

func NewCurriculumController() *CurriculumController {
	return &CurriculumController{}
}

// GetCurriculum godoc
// @Summary List curriculum enumerations
// @Description Subjects with their domains, assessment periods and assessment methods accepted in a plan.
// @Tags Curriculum
// @Produce json
// @Success 200 {object} dto.CurriculumResponse
// @Router /curriculum [get]
func (c *CurriculumController) GetCurriculum(ctx *gin.Context) {
	subjects := curriculum.Subjects()
	resp := dto.CurriculumResponse{
		Subjects: make([]dto.SubjectDTO, len(subjects)),
		Periods:  curriculum.Periods(),
		Methods:  curriculum.Methods(),
	}
	for i := range subjects {
		copier.Copy(&resp.Subjects[i], &subjects[i])
	}
	ctx.JSON(http.StatusOK, resp)
}
