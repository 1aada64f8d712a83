package risk

// Category is the risk band a ward falls into.
type Category string

const (
	CategoryLow      Category = "LOW"
	CategoryMedium   Category = "MEDIUM"
	CategoryHigh     Category = "HIGH"
	CategoryCritical Category = "CRITICAL"
)

// Categorize maps a score onto the four bands. Band boundaries are
// inclusive on the lower bound: exactly 75 is CRITICAL, exactly 50 is HIGH,
// exactly 25 is MEDIUM.
func Categorize(score float64) Category {
	switch {
	case score >= 75:
		return CategoryCritical
	case score >= 50:
		return CategoryHigh
	case score >= 25:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// Recommendation returns the fixed preparedness advisory for a category.
// The wording is a business string rendered verbatim in the dashboard;
// keep it stable per category.
func Recommendation(c Category) string {
	switch c {
	case CategoryCritical:
		return "CRITICAL: Immediate action required. Deploy emergency response teams and drainage clearing units."
	case CategoryHigh:
		return "HIGH: Proactive monitoring needed. Ensure drainage systems are clear and emergency teams are on standby."
	case CategoryMedium:
		return "MEDIUM: Regular monitoring recommended. Schedule routine drainage maintenance."
	default:
		return "LOW: Standard monitoring sufficient. Continue regular maintenance schedules."
	}
}
