package model

import "strings"

// LevelCriteria holds the achievement description for each level.
type LevelCriteria struct {
	High   string `json:"high"`
	Medium string `json:"medium"`
	Low    string `json:"low"`
}

// AssessmentPlan is the user-authored assessment configuration. The pipeline only reads it.
type AssessmentPlan struct {
	Subject             string        `json:"subject"`
	Domain              string        `json:"domain"`
	Period              string        `json:"period"`
	AssessmentMethod    string        `json:"assessmentMethod"`
	AssessmentElements  string        `json:"assessmentElements"`
	AchievementStandard string        `json:"achievementStandard"`
	KeyPoints           string        `json:"keyPoints"`
	Criteria            LevelCriteria `json:"criteria"`
}

// Attachment is a single binary document handed over by the file collaborator.
type Attachment struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mimeType"`
}

// TaskInput is the evaluation item: free text, an optional attachment, or both.
type TaskInput struct {
	Text       string      `json:"text"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

func (t TaskInput) HasText() bool {
	return strings.TrimSpace(t.Text) != ""
}

func (t TaskInput) HasAttachment() bool {
	return t.Attachment != nil && len(t.Attachment.Data) > 0
}

// IsEmpty reports whether there is nothing to generate materials from.
func (t TaskInput) IsEmpty() bool {
	return !t.HasText() && !t.HasAttachment()
}

// KeyPoints is the result of key-points generation.
type KeyPoints struct {
	TeachingPoints   string `json:"teachingPoints"`
	AssessmentPoints string `json:"assessmentPoints"`
}

// Format renders the key points the way they are written back into AssessmentPlan.KeyPoints.
func (k KeyPoints) Format() string {
	return "[수업 주안점]\n" + k.TeachingPoints + "\n\n[평가 주안점]\n" + k.AssessmentPoints
}
