package grade

import "math"

// Letter is a derived letter grade. Only A through E are ever produced for
// in-range scores.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
)

// Letters returns all letters in descending order of merit.
func Letters() []Letter {
	return []Letter{LetterA, LetterB, LetterC, LetterD, LetterE}
}

// ScoreToLetter maps a numeric score to its letter grade:
//
//	A: score >= 85
//	B: 70 <= score < 85
//	C: 60 <= score < 70
//	D: 50 <= score < 60
//	E: score < 50
//
// Each band is inclusive on its lower edge. Range validation is the caller's
// responsibility; scores outside [0,100] are not defined by this function.
func ScoreToLetter(score float64) Letter {
	switch {
	case score >= 85:
		return LetterA
	case score >= 70:
		return LetterB
	case score >= 60:
		return LetterC
	case score >= 50:
		return LetterD
	default:
		return LetterE
	}
}

// Point returns the GPA point of the letter: A=4.0, B=3.0, C=2.0, D=1.0,
// E=0.0. Any unrecognized letter maps to 0.0.
func (l Letter) Point() float64 {
	switch l {
	case LetterA:
		return 4.0
	case LetterB:
		return 3.0
	case LetterC:
		return 2.0
	case LetterD:
		return 1.0
	default:
		return 0.0
	}
}

// Summarize aggregates a student's graded courses into total credits and a
// credit-weighted GPA: Σ(point × credits) / Σcredits. A student with no
// graded courses gets totalCredits 0 and GPA 0.0; the division is guarded.
//
// The GPA is rounded to two decimal places half away from zero
// (math.Round), so 3.875 rounds to 3.88.
func Summarize(grades []StudentGrade) (totalCredits int, gpa float64) {
	var totalPoints float64
	for _, g := range grades {
		totalPoints += g.Letter.Point() * float64(g.Credits)
		totalCredits += g.Credits
	}
	if totalCredits == 0 {
		return 0, 0.0
	}
	gpa = math.Round(totalPoints/float64(totalCredits)*100) / 100
	return totalCredits, gpa
}

// Distribution counts grades per letter. It always contains all five
// letters, zero-filled when a letter was not awarded.
type Distribution map[Letter]int

// NewDistribution returns a zero-filled distribution over A..E.
func NewDistribution() Distribution {
	d := make(Distribution, 5)
	for _, l := range Letters() {
		d[l] = 0
	}
	return d
}

// Total returns the number of grades counted.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}
