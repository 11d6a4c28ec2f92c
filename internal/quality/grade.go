package quality

// Grade is a letter band over the composite score.
type Grade string

const (
	GradeS      Grade = "S"
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeF      Grade = "F"
)

type gradeBand struct {
	min         float64
	grade       Grade
	description string
}

// Highest band first; the first band whose lower bound is met wins.
var gradeBands = []gradeBand{
	{0.95, GradeS, "Perfect - Legendary Quality"},
	{0.90, GradeAPlus, "Exceptional - Near Perfect"},
	{0.85, GradeA, "Excellent - High Quality"},
	{0.80, GradeAMinus, "Very Good - Minor Issues"},
	{0.75, GradeBPlus, "Good - Playable"},
	{0.70, GradeB, "Above Average - Some Issues"},
	{0.65, GradeBMinus, "Average - Noticeable Issues"},
	{0.60, GradeCPlus, "Below Average - Significant Issues"},
	{0.50, GradeC, "Poor - Major Problems"},
}

// GradeFor maps a composite score to its letter grade.
func GradeFor(score float64) Grade {
	for _, band := range gradeBands {
		if score >= band.min {
			return band.grade
		}
	}
	return GradeF
}

// Description returns the human-readable label for the grade.
func (g Grade) Description() string {
	for _, band := range gradeBands {
		if band.grade == g {
			return band.description
		}
	}
	return "Unacceptable - Critically Flawed"
}

// Grades lists every grade from best to worst.
func Grades() []Grade {
	grades := make([]Grade, 0, len(gradeBands)+1)
	for _, band := range gradeBands {
		grades = append(grades, band.grade)
	}
	return append(grades, GradeF)
}

// MinScore returns the inclusive lower bound of the grade's band.
func (g Grade) MinScore() float64 {
	for _, band := range gradeBands {
		if band.grade == g {
			return band.min
		}
	}
	return 0
}
