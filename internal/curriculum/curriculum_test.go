package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookups(t *testing.T) {
	assert.True(t, IsSubject("국어"))
	assert.False(t, IsSubject("철학"))
	assert.True(t, IsDomain("국어", "읽기"))
	assert.False(t, IsDomain("수학", "읽기"))
	assert.False(t, IsDomain("없는교과", "읽기"))
	assert.True(t, IsPeriod("4월"))
	assert.False(t, IsPeriod("13월"))
	assert.True(t, IsMethod("서·논술형"))
	assert.False(t, IsMethod("객관식"))
}

func TestSubjectsReturnsCopies(t *testing.T) {
	all := Subjects()
	assert.Equal(t, "국어", all[0].Name)
	all[0].Domains[0] = "changed"
	assert.Equal(t, "듣기·말하기", Domains("국어")[0])

	p := Periods()
	p[0] = "changed"
	assert.Equal(t, "3월", Periods()[0])
}
