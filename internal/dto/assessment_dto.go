package dto

type LevelCriteriaDTO struct {
	High   string `json:"high"`
	Medium string `json:"medium"`
	Low    string `json:"low"`
}

// AssessmentPlanDTO is the plan as sent by the client. Enumerated fields are checked against the
// curriculum tables when present; blank fields are reported by the generation operation itself.
type AssessmentPlanDTO struct {
	Subject             string           `json:"subject" binding:"subject" example:"국어"`
	Domain              string           `json:"domain" example:"읽기"`
	Period              string           `json:"period" binding:"period" example:"4월"`
	AssessmentMethod    string           `json:"assessmentMethod" binding:"assessment_method" example:"서·논술형"`
	AssessmentElements  string           `json:"assessmentElements" example:"주장 파악하기"`
	AchievementStandard string           `json:"achievementStandard" example:"[4국02-05] 글을 읽고 글쓴이의 주장을 파악한다."`
	KeyPoints           string           `json:"keyPoints"`
	Criteria            LevelCriteriaDTO `json:"criteria"`
}

type TaskDTO struct {
	Text string `json:"text"`
}

// AttachmentDTO carries a PDF as standard base64.
type AttachmentDTO struct {
	Data     string `json:"data" binding:"required,base64"`
	MIMEType string `json:"mimeType" binding:"required,eq=application/pdf" example:"application/pdf"`
}

type GenerateMaterialsRequest struct {
	Plan       AssessmentPlanDTO `json:"plan"`
	Task       TaskDTO           `json:"task"`
	Attachment *AttachmentDTO    `json:"attachment,omitempty"`
}

type KeyPointsResponse struct {
	TeachingPoints   string `json:"teachingPoints"`
	AssessmentPoints string `json:"assessmentPoints"`
	// KeyPoints is the combined text to store back into the plan.
	KeyPoints string `json:"keyPoints"`
}

type SubjectDTO struct {
	Name    string   `json:"name"`
	Domains []string `json:"domains"`
}

type CurriculumResponse struct {
	Subjects []SubjectDTO `json:"subjects"`
	Periods  []string     `json:"periods"`
	Methods  []string     `json:"methods"`
}
