// Package curriculum holds the closed enumerations a plan is drawn from:
// subjects and their domains, assessment periods and assessment methods.
package curriculum

type subjectEntry struct {
	name    string
	domains []string
}

var subjects = []subjectEntry{
	{"국어", []string{"듣기·말하기", "읽기", "쓰기", "문법", "문학", "매체"}},
	{"수학", []string{"수와 연산", "변화와 관계", "도형과 측정", "자료와 가능성"}},
	{"사회", []string{"지리 인식", "자연환경과 인간 생활", "인문환경과 인간 생활", "지속가능한 세계", "정치", "법", "경제", "사회·문화", "역사"}},
	{"과학", []string{"운동과 에너지", "물질", "생명", "지구와 우주", "과학과 사회"}},
	{"영어", []string{"이해", "표현"}},
	{"도덕", []string{"자신과의 관계", "타인과의 관계", "사회·공동체와의 관계", "자연과의 관계"}},
	{"실과", []string{"인간 발달과 주도적 삶", "생활환경과 지속가능한 선택", "기술적 문제해결과 혁신", "지속가능한 기술과 융합"}},
	{"체육", []string{"운동", "스포츠", "표현"}},
	{"음악", []string{"연주", "감상", "창작"}},
	{"미술", []string{"미적 체험", "표현", "감상"}},
}

// School year runs from March to February.
var periods = []string{"3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월", "1월", "2월"}

var methods = []string{"서·논술형", "구술·발표", "토의·토론", "프로젝트", "실험·실습", "포트폴리오", "관찰법", "학습 일지"}

// Subject is a subject with its domains, in display order.
type Subject struct {
	Name    string   `json:"name"`
	Domains []string `json:"domains"`
}

// Subjects returns a copy of all subjects in display order.
func Subjects() []Subject {
	out := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, Subject{Name: s.name, Domains: append([]string(nil), s.domains...)})
	}
	return out
}

// Domains returns the domains of subject, or nil if the subject is unknown.
func Domains(subject string) []string {
	for _, s := range subjects {
		if s.name == subject {
			return append([]string(nil), s.domains...)
		}
	}
	return nil
}

func Periods() []string { return append([]string(nil), periods...) }

func Methods() []string { return append([]string(nil), methods...) }

func IsSubject(subject string) bool {
	return Domains(subject) != nil
}

func IsDomain(subject, domain string) bool {
	return contains(Domains(subject), domain)
}

func IsPeriod(period string) bool { return contains(periods, period) }

func IsMethod(method string) bool { return contains(methods, method) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
