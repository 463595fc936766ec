package roadmap

var planPhases = []string{"Foundation", "Intermediate Skills", "Advanced Topics", "Real-World Projects"}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var schedule = map[string]DaySchedule{
	"Monday":    {"Study new concepts (2 hours)", "Watch tutorials & take notes (1.5 hours)", []string{"Read documentation", "Watch video lectures"}, 3.5},
	"Tuesday":   {"Practice coding exercises (2 hours)", "Work on challenges (1.5 hours)", []string{"Solve LeetCode/HackerRank", "Code along tutorials"}, 3.5},
	"Wednesday": {"Build mini-project (2.5 hours)", "Debug and refine (1 hour)", []string{"Start project", "Implement core features"}, 3.5},
	"Thursday":  {"Review concepts (1.5 hours)", "Take quiz/assessment (1 hour)", []string{"Self-assessment", "Review mistakes"}, 2.5},
	"Friday":    {"Continue project work (2 hours)", "Code review & optimization (1.5 hours)", []string{"Add features", "Optimize code"}, 3.5},
	"Saturday":  {"Build portfolio project (3 hours)", "Document your work (1 hour)", []string{"Major project work", "Write README"}, 4},
	"Sunday":    {"Weekly review (1 hour)", "Plan next week (0.5 hours)", []string{"Review progress", "Set goals for next week"}, 1.5},
}

var assessments = []string{"Weekly quiz on covered topics", "Code review of project", "Self-reflection on learning"}

// EnhancedStudyPlan splits weeks into four named phases. focusAreas is
// indexed by phase; modules are repeated every week.
func EnhancedStudyPlan(weeks int, focusAreas, modules []string) []WeekPlan {
	if weeks <= 0 {
		return []WeekPlan{}
	}
	perPhase := weeks / len(planPhases)
	if perPhase < 1 {
		perPhase = 1
	}
	if len(modules) > 2 {
		modules = modules[:2]
	}

	plan := make([]WeekPlan, 0, weeks)
	for w := 1; w <= weeks; w++ {
		idx := (w - 1) / perPhase
		if idx > len(planPhases)-1 {
			idx = len(planPhases) - 1
		}
		focus := ""
		if idx < len(focusAreas) {
			focus = focusAreas[idx]
		}
		days, hours := weekSchedule()
		plan = append(plan, WeekPlan{
			WeekNumber:     w,
			Phase:          planPhases[idx],
			FocusArea:      focus,
			Modules:        append([]string{}, modules...),
			DailySchedule:  days,
			EstimatedHours: hours,
			Goals: []string{
				"Master " + focus + " fundamentals",
				"Complete 1 major project",
				"Solve 10+ practice problems",
				"Document learning progress",
			},
			Assessments: append([]string{}, assessments...),
		})
	}
	return plan
}

func weekSchedule() (map[string]DaySchedule, float64) {
	out := make(map[string]DaySchedule, len(weekdays))
	var hours float64
	for _, day := range weekdays {
		d := schedule[day]
		d.Tasks = append([]string(nil), d.Tasks...)
		out[day] = d
		hours += d.Duration
	}
	return out, hours
}
