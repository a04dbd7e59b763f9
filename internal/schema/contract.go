// Package schema declares the output shapes the generative backend must produce and
// validates raw responses against them.
package schema

import "github.com/google/generative-ai-go/genai"

// Contract is the declared shape of a generation response. The same value is sent to the
// backend as the response schema and used to validate what comes back.
type Contract = *genai.Schema

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func strArray(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: description}
}

// CriteriaLevels is the shape of the 상/중/하 criteria generation.
var CriteriaLevels Contract = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"high":   str("성취수준 '상'에 대한 설명"),
		"medium": str("성취수준 '중'에 대한 설명"),
		"low":    str("성취수준 '하'에 대한 설명"),
	},
	Required: []string{"high", "medium", "low"},
}

// KeyPoints is the shape of the teaching/assessment key-points generation.
var KeyPoints Contract = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"teachingPoints":   str("수업 주안점"),
		"assessmentPoints": str("평가 주안점"),
	},
	Required: []string{"teachingPoints", "assessmentPoints"},
}

// Materials is the shape of the full assessment materials generation.
var Materials Contract = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"criteria": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"unit":                str("단원명 (예: 2. 서로 다른 의견)"),
				"assessmentArea":      str("평가 영역 (예: 읽기)"),
				"assessmentPeriod":    str("평가 시기 (예: 4월)"),
				"assessmentMethod":    str("평가 방법 (예: 서·논술형)"),
				"achievementStandard": str("성취기준 코드와 내용"),
				"subjectCompetencies": strArray("관련 교과 역량 목록"),
				"assessmentElements":  str("핵심 평가 요소"),
			},
			Required: []string{"unit", "assessmentArea", "assessmentPeriod", "assessmentMethod", "achievementStandard", "subjectCompetencies", "assessmentElements"},
		},
		"rubric": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"criteria": strArray("분석적 루브릭의 평가 준거 목록"),
				"levels": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"level":        {Type: genai.TypeString, Enum: []string{"상", "중", "하"}, Description: "성취 수준"},
							"score":        str("배점 (예: 3점)"),
							"descriptions": strArray("각 평가 준거에 대한 수준별 설명"),
						},
						Required: []string{"level", "score", "descriptions"},
					},
				},
			},
			Required: []string{"criteria", "levels"},
		},
		"scoringSummary": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"high":   str("종합 평가 '상' 수준의 점수 범위"),
				"medium": str("종합 평가 '중' 수준의 점수 범위"),
				"low":    str("종합 평가 '하' 수준의 점수 범위"),
			},
			Required: []string{"high", "medium", "low"},
		},
		"exampleAnswers": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": str("문항 번호 또는 요약 (예: '1번 문항')"),
					"answer":   str("해당 문항의 모범 답안"),
				},
				Required: []string{"question", "answer"},
			},
			Description: "각 문항별 예시 답안 목록",
		},
	},
	Required: []string{"criteria", "rubric", "scoringSummary", "exampleAnswers"},
}
