package value

import "strings"

// Grade буквенная оценка вендора, от A (лучшая) до E (худшая).
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

//nolint:gochecknoglobals
var gradeRanks = map[Grade]int{
	GradeA: 1,
	GradeB: 2,
	GradeC: 3,
	GradeD: 4,
	GradeE: 5,
}

// Grades returns every known grade ordered from best to worst.
func Grades() []Grade {
	return []Grade{GradeA, GradeB, GradeC, GradeD, GradeE}
}

// ParseGrade normalizes user input. Unknown values are kept as is, so the
// caller decides whether to degrade or reject them.
func ParseGrade(s string) (Grade, bool) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))

	return g, g.IsValid()
}

func (g Grade) IsValid() bool {
	_, ok := gradeRanks[g]
	return ok
}

// Rank returns 1 for A through 5 for E and 0 for unknown grades.
func (g Grade) Rank() int {
	return gradeRanks[g]
}

func (g Grade) String() string {
	return string(g)
}
