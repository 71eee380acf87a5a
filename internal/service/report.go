package service

const (
	ReportTitle    = "IDEA VALIDATION REPORT"
	ReportFileName = "idea_validation.txt"
)

// BuildReport concatenates the idea and its assessment into a plain-text report.
func BuildReport(idea, assessment string) string {
	return ReportTitle + "\n\n" + idea + "\n\n" + assessment
}
