package analysis

// GradeFor maps a [0,100] score to its letter grade. The same mapping is
// used for the overall score and for each category score.
func GradeFor(score int) Grade {
	switch {
	case score >= 90:
		return Grade{Letter: "A+", Color: "#10b981"}
	case score >= 80:
		return Grade{Letter: "A", Color: "#34d399"}
	case score >= 70:
		return Grade{Letter: "B+", Color: "#6ee7b7"}
	case score >= 60:
		return Grade{Letter: "B", Color: "#fbbf24"}
	case score >= 50:
		return Grade{Letter: "C+", Color: "#f59e0b"}
	case score >= 40:
		return Grade{Letter: "C", Color: "#fb923c"}
	case score >= 30:
		return Grade{Letter: "D", Color: "#f87171"}
	default:
		return Grade{Letter: "F", Color: "#ef4444"}
	}
}
