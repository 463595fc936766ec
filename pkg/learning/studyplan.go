package learning

const weeklyHours = 15

// dailyTasks is the same for every week.
var dailyTasks = map[string][]string{
	"Monday":    {"Review concepts", "Watch video lectures"},
	"Tuesday":   {"Practice coding problems", "Complete exercises"},
	"Wednesday": {"Work on mini-project", "Apply concepts"},
	"Thursday":  {"Review and revise", "Take notes"},
	"Friday":    {"Take practice quiz", "Self-assessment"},
	"Saturday":  {"Build portfolio project", "Hands-on practice"},
	"Sunday":    {"Rest and recap week", "Plan next week"},
}

// StudyPlan spreads recommendations over weeks, max(1, len/weeks) per week.
// Weeks past the end of the list get no modules.
func StudyPlan(recs []Recommendation, weeks int) []WeekPlan {
	if weeks <= 0 {
		return []WeekPlan{}
	}
	perWeek := len(recs) / weeks
	if perWeek < 1 {
		perWeek = 1
	}
	plan := make([]WeekPlan, 0, weeks)
	for w := 1; w <= weeks; w++ {
		start := (w - 1) * perWeek
		end := start + perWeek
		if end > len(recs) {
			end = len(recs)
		}
		modules := []string{}
		for i := start; i < end; i++ {
			modules = append(modules, recs[i].ModuleID)
		}
		plan = append(plan, WeekPlan{
			WeekNumber:     w,
			Modules:        modules,
			DailyTasks:     copyTasks(),
			EstimatedHours: weeklyHours,
		})
	}
	return plan
}

func copyTasks() map[string][]string {
	out := make(map[string][]string, len(dailyTasks))
	for day, tasks := range dailyTasks {
		out[day] = append([]string(nil), tasks...)
	}
	return out
}
