package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-hub/academic-records/internal/domain/grade"
	"github.com/campus-hub/academic-records/internal/domain/shared"
	"github.com/campus-hub/academic-records/internal/domain/student"
)

// fakeGradeRepo serves canned transcripts and records how often the store
// was actually hit.
type fakeGradeRepo struct {
	grade.Repository

	transcripts    map[int64]*grade.Transcript
	transcriptHits int
}

func (f *fakeGradeRepo) Transcript(ctx context.Context, studentID int64) (*grade.Transcript, error) {
	f.transcriptHits++
	tr, ok := f.transcripts[studentID]
	if !ok {
		return nil, shared.ErrStudentNotFound
	}
	return tr, nil
}

func (f *fakeGradeRepo) Distribution(ctx context.Context, courseID *int64) (grade.Distribution, error) {
	d := grade.NewDistribution()
	d[grade.LetterA] = 2
	d[grade.LetterB] = 1
	return d, nil
}

// fakeTranscriptCache is an in-memory grade.TranscriptCache.
type fakeTranscriptCache struct {
	entries map[int64]*grade.Transcript

	getErr error
	setErr error
}

func (f *fakeTranscriptCache) Get(ctx context.Context, studentID int64) (*grade.Transcript, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	tr, ok := f.entries[studentID]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return tr, nil
}

func (f *fakeTranscriptCache) Set(ctx context.Context, studentID int64, tr *grade.Transcript) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[studentID] = tr
	return nil
}

func (f *fakeTranscriptCache) Invalidate(ctx context.Context, studentID int64) error {
	delete(f.entries, studentID)
	return nil
}

func sampleTranscript() *grade.Transcript {
	grades := []grade.StudentGrade{
		{
			ID:           1,
			Score:        88.5,
			Letter:       grade.ScoreToLetter(88.5),
			Semester:     1,
			AcademicYear: "2023/2024",
			CourseCode:   "CS101",
			CourseName:   "Introduction to Programming",
			Credits:      3,
		},
	}
	total, gpa := grade.Summarize(grades)
	return &grade.Transcript{
		Student: &student.Student{
			ID:    42,
			NIM:   "2021001",
			Name:  "Ada Lovelace",
			Major: "Computer Science",
		},
		Grades:       grades,
		TotalCredits: total,
		GPA:          gpa,
	}
}

func TestGetTranscriptHandler_Handle(t *testing.T) {
	repo := &fakeGradeRepo{transcripts: map[int64]*grade.Transcript{42: sampleTranscript()}}
	handler := NewGetTranscriptHandler(repo, nil, nil)

	dto, err := handler.Handle(context.Background(), GetTranscriptQuery{StudentID: 42})
	assert.NoError(t, err)

	assert.NotEmpty(t, dto.Reference)
	assert.False(t, dto.GeneratedAt.IsZero())
	assert.Equal(t, "2021001", dto.Student.NIM)
	assert.Equal(t, "Ada Lovelace", dto.Student.Name)
	assert.Len(t, dto.Grades, 1)
	assert.Equal(t, grade.LetterA, dto.Grades[0].Letter)
	assert.Equal(t, 3, dto.TotalCredits)
	assert.Equal(t, 4.0, dto.GPA)
}

func TestGetTranscriptHandler_Validation(t *testing.T) {
	handler := NewGetTranscriptHandler(&fakeGradeRepo{}, nil, nil)

	_, err := handler.Handle(context.Background(), GetTranscriptQuery{StudentID: 0})
	assert.True(t, shared.IsValidation(err))
}

func TestGetTranscriptHandler_UnknownStudent(t *testing.T) {
	repo := &fakeGradeRepo{transcripts: map[int64]*grade.Transcript{}}
	handler := NewGetTranscriptHandler(repo, nil, nil)

	_, err := handler.Handle(context.Background(), GetTranscriptQuery{StudentID: 999})
	assert.ErrorIs(t, err, shared.ErrStudentNotFound)
}

func TestGetTranscriptHandler_CacheAside(t *testing.T) {
	repo := &fakeGradeRepo{transcripts: map[int64]*grade.Transcript{42: sampleTranscript()}}
	cache := &fakeTranscriptCache{entries: map[int64]*grade.Transcript{}}
	handler := NewGetTranscriptHandler(repo, cache, nil)

	// First call misses the cache, hits the store, and populates the cache.
	first, err := handler.Handle(context.Background(), GetTranscriptQuery{StudentID: 42})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.transcriptHits)
	assert.Contains(t, cache.entries, int64(42))

	// Second call is served from cache.
	second, err := handler.Handle(context.Background(), GetTranscriptQuery{StudentID: 42})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.transcriptHits)

	assert.Equal(t, first.GPA, second.GPA)
	assert.Equal(t, first.TotalCredits, second.TotalCredits)
	// Each issued transcript gets a fresh document reference.
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestGetTranscriptHandler_CacheFailuresFallThrough(t *testing.T) {
	repo := &fakeGradeRepo{transcripts: map[int64]*grade.Transcript{42: sampleTranscript()}}
	cache := &fakeTranscriptCache{
		entries: map[int64]*grade.Transcript{},
		getErr:  errors.New("redis down"),
		setErr:  errors.New("redis down"),
	}
	handler := NewGetTranscriptHandler(repo, cache, nil)

	dto, err := handler.Handle(context.Background(), GetTranscriptQuery{StudentID: 42})
	assert.NoError(t, err)
	assert.Equal(t, 4.0, dto.GPA)
	assert.Equal(t, 1, repo.transcriptHits)
}

func TestGetGradeDistributionHandler_Handle(t *testing.T) {
	handler := NewGetGradeDistributionHandler(&fakeGradeRepo{}, nil)

	dto, err := handler.Handle(context.Background(), GetGradeDistributionQuery{})
	assert.NoError(t, err)

	assert.Len(t, dto.Counts, 5)
	assert.Equal(t, 2, dto.Counts[grade.LetterA])
	assert.Equal(t, 1, dto.Counts[grade.LetterB])
	assert.Equal(t, 0, dto.Counts[grade.LetterE])
	assert.Equal(t, 3, dto.Total)
}
