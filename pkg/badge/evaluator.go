package badge

// Evaluate returns a copy of the catalog with Earned set for st.
// Without a score record nothing is earned.
func Evaluate(catalog []Badge, st Standing) []Badge {
	out := make([]Badge, len(catalog))
	for i, b := range catalog {
		b.Earned = st.HasScore && earned(b, st)
		out[i] = b
	}
	return out
}

// Unearned returns the catalog with every badge marked as not earned.
func Unearned(catalog []Badge) []Badge {
	return Evaluate(catalog, Standing{})
}

func earned(b Badge, st Standing) bool {
	var value int
	switch b.Metric {
	case MetricScoreRecord:
		return true
	case MetricSkillsCount:
		value = st.SkillsCount
	case MetricScore:
		value = st.Score
	case MetricRank:
		if st.Rank <= 0 {
			return false
		}
		value = st.Rank
	default:
		return false
	}
	switch b.Operator {
	case ">=", "":
		return value >= b.Requirement
	case ">":
		return value > b.Requirement
	case "<=":
		return value <= b.Requirement
	case "<":
		return value < b.Requirement
	case "==":
		return value == b.Requirement
	}
	return false
}
