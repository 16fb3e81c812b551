package course

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-hub/academic-records/internal/domain/shared"
)

func TestCode_IsValid(t *testing.T) {
	assert.True(t, Code("CS101").IsValid())
	assert.False(t, Code("").IsValid())
	assert.False(t, Code("  ").IsValid())
}

func TestValidCredits(t *testing.T) {
	assert.False(t, ValidCredits(0))
	assert.True(t, ValidCredits(1))
	assert.True(t, ValidCredits(6))
	assert.False(t, ValidCredits(7))
}

func TestValidSemester(t *testing.T) {
	assert.False(t, ValidSemester(0))
	assert.True(t, ValidSemester(1))
	assert.True(t, ValidSemester(8))
	assert.False(t, ValidSemester(9))
}

func TestCreateInput_Validate(t *testing.T) {
	valid := CreateInput{
		Code:     "CS101",
		Name:     "Introduction to Programming",
		Credits:  3,
		Semester: 1,
	}
	assert.NoError(t, valid.Validate())

	missingCode := valid
	missingCode.Code = ""
	assert.ErrorIs(t, missingCode.Validate(), shared.ErrMissingCourseCode)

	missingName := valid
	missingName.Name = ""
	assert.ErrorIs(t, missingName.Validate(), shared.ErrMissingCourseName)

	badCredits := valid
	badCredits.Credits = 7
	assert.ErrorIs(t, badCredits.Validate(), shared.ErrCreditsOutOfRange)

	badSemester := valid
	badSemester.Semester = 0
	assert.ErrorIs(t, badSemester.Validate(), shared.ErrSemesterOutOfRange)
}

func TestUpdate_HasChanges(t *testing.T) {
	assert.False(t, Update{}.HasChanges())

	credits := 4
	assert.True(t, Update{Credits: &credits}.HasChanges())
}

func TestUpdate_Validate(t *testing.T) {
	assert.NoError(t, Update{}.Validate())

	good := 4
	assert.NoError(t, Update{Credits: &good}.Validate())

	// An out-of-range value rejects the whole update before anything is
	// applied.
	bad := 7
	name := "Advanced Programming"
	upd := Update{Name: &name, Credits: &bad}
	assert.ErrorIs(t, upd.Validate(), shared.ErrCreditsOutOfRange)

	badSem := 9
	assert.ErrorIs(t, Update{Semester: &badSem}.Validate(), shared.ErrSemesterOutOfRange)
}
