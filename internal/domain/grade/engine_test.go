package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreToLetter_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  Letter
	}{
		{100, LetterA},
		{85, LetterA},
		{84.999, LetterB},
		{70, LetterB},
		{69.999, LetterC},
		{60, LetterC},
		{59.999, LetterD},
		{50, LetterD},
		{49.999, LetterE},
		{0, LetterE},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreToLetter(tt.score), "score %v", tt.score)
	}
}

func TestLetter_Point(t *testing.T) {
	assert.Equal(t, 4.0, LetterA.Point())
	assert.Equal(t, 3.0, LetterB.Point())
	assert.Equal(t, 2.0, LetterC.Point())
	assert.Equal(t, 1.0, LetterD.Point())
	assert.Equal(t, 0.0, LetterE.Point())

	// Unrecognized letters never appear in stored data, but the mapping is
	// total regardless.
	assert.Equal(t, 0.0, Letter("F").Point())
	assert.Equal(t, 0.0, Letter("").Point())
}

func TestLetters_Order(t *testing.T) {
	assert.Equal(t, []Letter{LetterA, LetterB, LetterC, LetterD, LetterE}, Letters())
}

func TestSummarize_Empty(t *testing.T) {
	credits, gpa := Summarize(nil)
	assert.Equal(t, 0, credits)
	assert.Equal(t, 0.0, gpa)

	credits, gpa = Summarize([]StudentGrade{})
	assert.Equal(t, 0, credits)
	assert.Equal(t, 0.0, gpa)
}

func TestSummarize_SingleCourse(t *testing.T) {
	grades := []StudentGrade{
		{Score: 88.5, Letter: ScoreToLetter(88.5), Credits: 3, CourseCode: "CS101"},
	}

	credits, gpa := Summarize(grades)
	assert.Equal(t, LetterA, grades[0].Letter)
	assert.Equal(t, 3, credits)
	assert.Equal(t, 4.0, gpa)
}

func TestSummarize_CreditWeighted(t *testing.T) {
	// A on 4 credits and C on 2 credits:
	// (4.0*4 + 2.0*2) / 6 = 20/6 = 3.333... -> 3.33
	grades := []StudentGrade{
		{Letter: LetterA, Credits: 4},
		{Letter: LetterC, Credits: 2},
	}

	credits, gpa := Summarize(grades)
	assert.Equal(t, 6, credits)
	assert.Equal(t, 3.33, gpa)
}

func TestSummarize_RoundsHalfAwayFromZero(t *testing.T) {
	// A(1) + B(7): (4 + 21) / 8 = 3.125, an exact midpoint.
	// Half away from zero gives 3.13, not banker's 3.12.
	grades := []StudentGrade{
		{Letter: LetterA, Credits: 1},
		{Letter: LetterB, Credits: 7},
	}

	_, gpa := Summarize(grades)
	assert.Equal(t, 3.13, gpa)
}

func TestSummarize_AllFailing(t *testing.T) {
	grades := []StudentGrade{
		{Letter: LetterE, Credits: 3},
		{Letter: LetterE, Credits: 4},
	}

	credits, gpa := Summarize(grades)
	assert.Equal(t, 7, credits)
	assert.Equal(t, 0.0, gpa)
}

func TestNewDistribution_ZeroFilled(t *testing.T) {
	d := NewDistribution()

	assert.Len(t, d, 5)
	for _, l := range Letters() {
		n, ok := d[l]
		assert.True(t, ok, "letter %s missing", l)
		assert.Equal(t, 0, n)
	}
	assert.Equal(t, 0, d.Total())
}

func TestDistribution_Total(t *testing.T) {
	d := NewDistribution()
	d[LetterA] = 3
	d[LetterB] = 5
	d[LetterE] = 1

	assert.Equal(t, 9, d.Total())
}

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore(0))
	assert.True(t, ValidScore(100))
	assert.True(t, ValidScore(88.5))
	assert.False(t, ValidScore(-0.001))
	assert.False(t, ValidScore(100.001))
}

func TestCreateInput_Validate(t *testing.T) {
	valid := CreateInput{
		StudentID:    1,
		CourseID:     2,
		Score:        88.5,
		Semester:     3,
		AcademicYear: "2023/2024",
	}
	assert.NoError(t, valid.Validate())

	missingStudent := valid
	missingStudent.StudentID = 0
	assert.Error(t, missingStudent.Validate())

	missingCourse := valid
	missingCourse.CourseID = 0
	assert.Error(t, missingCourse.Validate())

	badScore := valid
	badScore.Score = 101
	assert.Error(t, badScore.Validate())

	badSemester := valid
	badSemester.Semester = 9
	assert.Error(t, badSemester.Validate())
}

func TestCreateInput_Key(t *testing.T) {
	in := CreateInput{
		StudentID:    7,
		CourseID:     9,
		Score:        70,
		Semester:     2,
		AcademicYear: "2024/2025",
	}

	assert.Equal(t, Key{
		StudentID:    7,
		CourseID:     9,
		Semester:     2,
		AcademicYear: "2024/2025",
	}, in.Key())
}
