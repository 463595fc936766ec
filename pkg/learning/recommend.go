package learning

// Recommend picks modules for a readiness score. hasScore false means the
// user has not uploaded a résumé yet.
func Recommend(score int, hasScore bool) []Recommendation {
	if !hasScore {
		return []Recommendation{
			{ModuleID: "dsa_basics", Title: "Data Structures & Algorithms Fundamentals", Reason: "Essential foundation for tech careers", Priority: "High", EstimatedImpact: 25},
		}
	}
	switch {
	case score < 50:
		return []Recommendation{
			{ModuleID: "dsa_basics", Title: "Data Structures & Algorithms Fundamentals", Reason: "Build strong foundation in DSA", Priority: "High", EstimatedImpact: 25},
			{ModuleID: "communication_skills", Title: "Professional Communication", Reason: "Essential for workplace success", Priority: "High", EstimatedImpact: 20},
			{ModuleID: "python_advanced", Title: "Advanced Python Programming", Reason: "Strengthen programming skills", Priority: "Medium", EstimatedImpact: 18},
		}
	case score < 70:
		return []Recommendation{
			{ModuleID: "sql_mastery", Title: "SQL Query Mastery", Reason: "Strengthen database skills", Priority: "Medium", EstimatedImpact: 15},
			{ModuleID: "react_advanced", Title: "Advanced React Patterns", Reason: "Modern web development essential", Priority: "Medium", EstimatedImpact: 18},
			{ModuleID: "docker_kubernetes", Title: "Docker & Kubernetes Essentials", Reason: "DevOps skills in high demand", Priority: "High", EstimatedImpact: 22},
		}
	default:
		return []Recommendation{
			{ModuleID: "system_design", Title: "System Design Principles", Reason: "Level up to senior roles", Priority: "High", EstimatedImpact: 30},
			{ModuleID: "agile_scrum", Title: "Agile & Scrum Methodologies", Reason: "Leadership and project management", Priority: "Medium", EstimatedImpact: 20},
		}
	}
}
