// Package prompt renders the natural-language instructions sent to the generative backend.
// Every function here is pure: same input, same text, no I/O.
package prompt

import (
	"fmt"
	"strings"

	"github.com/lshigami/Assessly/internal/model"
)

const mathSubject = "수학"

// CriteriaLevels asks for 상/중/하 achievement descriptions for a standard and its key points.
func CriteriaLevels(standard, keyPoints string) string {
	var b strings.Builder
	b.WriteString("**지시:** 당신은 한국 초등학교 평가 전문가입니다. 아래 '성취기준'과 '수업/평가 연계 주안점'을 근거로 ")
	b.WriteString("학생의 성취 수준을 '상', '중', '하'로 나누는 평가기준을 작성하여 JSON 객체로 반환하세요.\n\n")

	writeSection(&b, "성취기준", standard)
	writeSection(&b, "수업/평가 연계 주안점", keyPoints)

	b.WriteString("**요구사항:**\n")
	b.WriteString("1. 'high', 'medium', 'low' 세 개의 키만 가진 JSON 객체를 만드세요.\n")
	b.WriteString("2. 각 값에는 해당 수준의 학생이 보여 주는 구체적인 행동이나 결과물을 서술하세요.\n")
	b.WriteString("3. '상'은 성취기준을 완전히 이해하고 넘어선 수준, '중'은 성취기준을 충실히 달성한 수준, ")
	b.WriteString("'하'는 성취기준 도달을 위해 추가 지원이 필요한 수준입니다.\n")
	b.WriteString("4. 모든 문장은 '~할 수 있다.' 또는 '~한다.'로 끝맺으세요.\n")
	return b.String()
}

// KeyPoints asks for one teaching point and one assessment point sentence.
func KeyPoints(plan model.AssessmentPlan) string {
	var b strings.Builder
	b.WriteString("**지시:** 당신은 한국 초등학교 ")
	b.WriteString(subjectLabel(plan.Subject))
	b.WriteString("교육과정 및 평가 전문가입니다. 아래 정보를 바탕으로 '수업 주안점'과 '평가 주안점'을 ")
	b.WriteString("각각 한 문장으로 작성하여 JSON 객체로 반환하세요.\n\n")

	b.WriteString("**입력 정보:**\n---\n")
	fmt.Fprintf(&b, "- 교과: %s\n", plan.Subject)
	fmt.Fprintf(&b, "- 영역: %s\n", plan.Domain)
	fmt.Fprintf(&b, "- 평가방법: %s\n", plan.AssessmentMethod)
	fmt.Fprintf(&b, "- 평가요소: %s\n", plan.AssessmentElements)
	fmt.Fprintf(&b, "- 성취기준: %s\n", plan.AchievementStandard)
	b.WriteString("---\n\n")

	b.WriteString("**요구사항:**\n")
	b.WriteString("1. 'teachingPoints'와 'assessmentPoints' 두 키를 가진 JSON 객체를 만드세요.\n")
	b.WriteString("2. 'teachingPoints'에는 수업 활동의 핵심 방향을 담으세요.\n")
	b.WriteString("3. 'assessmentPoints'에는 평가 활동의 핵심 관점을 담으세요.\n")
	b.WriteString("4. 각 문장은 반드시 '~함.' 또는 '~음.'으로 끝맺으세요.\n")
	return b.String()
}

// Materials asks for the criteria sheet, analytic rubric, score-band summary and model answers.
func Materials(plan model.AssessmentPlan, task model.TaskInput) string {
	var b strings.Builder
	b.WriteString("**지시:** 당신은 한국 초등학교 ")
	b.WriteString(subjectLabel(plan.Subject))
	b.WriteString("교사를 돕는 평가자료 제작 전문가입니다. 아래 '수행평가계획'과 '평가문항'을 바탕으로 ")
	b.WriteString("'평가기준안', '분석적 루브릭 채점기준', '종합 평가 기준', '예시 답안'을 만들어 하나의 JSON 객체로 반환하세요.\n\n")

	if task.HasAttachment() {
		b.WriteString("**[중요] 첨부 파일 분석:**\n")
		b.WriteString("- 첨부 파일의 모든 텍스트와 그림, 표, 그래프 같은 시각 요소를 함께 분석하여 문항의 의도를 정확히 파악하세요.\n")
		if strings.TrimSpace(plan.Subject) == mathSubject {
			b.WriteString("- 수학 교과이므로 문제에 나오는 모든 숫자, 기호, 수식, 도형을 빠짐없이 정확하게 인식하고 풀이 과정에 그대로 반영하세요. ")
			b.WriteString("그림이나 복잡한 식이 있는 문제일수록 더 꼼꼼히 확인하세요.\n")
		}
		b.WriteString("\n")
	}

	writeSection(&b, "수행평가계획", formatPlan(plan))
	writeTask(&b, task)

	b2, b3 := ScoreBands(MinCriteria), ScoreBands(MaxCriteria)

	b.WriteString("**요구사항:**\n")
	b.WriteString("1. **평가기준안 (criteria):** '단원', '평가 영역', '평가 시기', '평가 방법', '성취기준', '교과역량', '평가 요소'를 채우세요.\n")
	b.WriteString("   - '평가 요소'는 수행평가계획에 적힌 값을 한 글자도 바꾸지 말고 그대로 쓰세요.\n")
	b.WriteString("   - '단원'은 성취기준과 평가요소를 보고 추론하세요 (예: 2. 서로 다른 의견).\n")
	b.WriteString("   - '교과역량'은 '비판적·창의적 사고 역량', '의사소통 역량'처럼 관련 역량을 배열로 제시하세요.\n")
	b.WriteString("2. **채점기준 (rubric):** 분석적 루브릭 형식으로 작성하세요.\n")
	fmt.Fprintf(&b, "   - 평가문항에서 가장 핵심적인 평가 준거를 %d개, 많아도 %d개까지만 뽑으세요. %d개를 넘으면 안 됩니다.\n", MinCriteria, MaxCriteria, MaxCriteria)
	fmt.Fprintf(&b, "   - 성취 수준은 '%s', '%s', '%s' 세 단계이며 배점은 반드시 '%s', '%s', '%s'입니다.\n",
		model.LevelHigh, model.LevelMedium, model.LevelLow, model.ScoreHigh, model.ScoreMedium, model.ScoreLow)
	b.WriteString("   - `criteria`는 평가 준거 이름의 문자열 배열입니다.\n")
	b.WriteString("   - `levels`는 수준별 객체 배열이며, 각 객체는 `level`, `score`, `descriptions`(문자열 배열)를 가집니다.\n")
	b.WriteString("   - `descriptions`는 `criteria`의 순서대로 준거마다 하나씩 작성하고, 각 문장은 '~할 수 있다.' 또는 '~한다.'로 끝맺으세요.\n")
	b.WriteString("3. **종합 평가 기준 (scoringSummary):**\n")
	fmt.Fprintf(&b, "   - 준거별 배점은 '%s' %d점, '%s' %d점, '%s' %d점으로 고정됩니다.\n",
		model.LevelHigh, model.PointsPerCriterion, model.LevelMedium, model.PointsPerCriterion-1, model.LevelLow, model.PointsPerCriterion-2)
	fmt.Fprintf(&b, "   - 총점 = %d × 준거 개수 (준거 %d개면 총점 %d점, %d개면 총점 %d점).\n",
		model.PointsPerCriterion, b2.Criteria, b2.Total, b3.Criteria, b3.Total)
	fmt.Fprintf(&b, "   - 상: 총점의 %d%% 이상, 중: 총점의 %d%% 이상 %d%% 미만, 하: 총점의 %d%% 미만. 경계값은 올림하여 정수 점수로 표현하세요.\n",
		HighThresholdPercent, MediumThresholdPercent, HighThresholdPercent, MediumThresholdPercent)
	writeBandExample(&b, b3)
	writeBandExample(&b, b2)
	b.WriteString("   - 'high', 'medium', 'low' 키의 값은 계산된 점수 범위 문자열입니다.\n")
	b.WriteString("4. **예시 답안 (exampleAnswers):**\n")
	b.WriteString("   - 평가문항에 포함된 하위 문항마다 하나씩 모범 답안을 만드세요. 문항이 하나라면 원소가 하나인 배열을 반환하세요.\n")
	b.WriteString("   - 각 객체는 'question'(문항 번호나 짧은 설명, 예: \"1번 문항\")과 'answer'(모범 답안)를 가집니다.\n")
	b.WriteString("   - 수학처럼 정답이 분명한 교과는 풀이 과정을 포함하고, 국어·사회처럼 답이 다양한 교과는 모범적인 서술 방향을 제시하세요.\n")
	return b.String()
}

func writeBandExample(b *strings.Builder, bands Bands) {
	s := bands.Summary()
	fmt.Fprintf(b, "   - 예) 준거 %d개, 총점 %d점: 상 '%s', 중 '%s', 하 '%s'\n", bands.Criteria, bands.Total, s.High, s.Medium, s.Low)
}

func writeSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "**%s:**\n---\n%s\n---\n\n", title, strings.TrimSpace(body))
}

func writeTask(b *strings.Builder, task model.TaskInput) {
	switch {
	case task.HasText() && task.HasAttachment():
		writeSection(b, "평가문항", "아래 텍스트와 첨부 파일을 모두 분석하여 평가문항 전체 내용을 파악하세요.\n\n[추가 설명/텍스트]\n"+task.Text)
	case task.HasText():
		writeSection(b, "평가문항", task.Text)
	case task.HasAttachment():
		writeSection(b, "평가문항", "첨부 파일을 분석하여 평가문항의 내용을 파악하세요.")
	}
}

func formatPlan(plan model.AssessmentPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- 교과: %s\n", plan.Subject)
	fmt.Fprintf(&b, "- 영역: %s\n", plan.Domain)
	fmt.Fprintf(&b, "- 시기: %s\n", plan.Period)
	fmt.Fprintf(&b, "- 평가요소: %s\n", plan.AssessmentElements)
	fmt.Fprintf(&b, "- 평가방법: %s\n", plan.AssessmentMethod)
	fmt.Fprintf(&b, "- 성취기준: %s\n", plan.AchievementStandard)
	fmt.Fprintf(&b, "- 수업/평가 연계 주안점: %s\n", plan.KeyPoints)
	fmt.Fprintf(&b, "- 평가기준 (상): %s\n", plan.Criteria.High)
	fmt.Fprintf(&b, "- 평가기준 (중): %s\n", plan.Criteria.Medium)
	fmt.Fprintf(&b, "- 평가기준 (하): %s", plan.Criteria.Low)
	return b.String()
}

func subjectLabel(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ""
	}
	return subject + " "
}
