package weather

// Report text. Every rendered report is built from these values only.
const (
	// DegreeSymbol is appended to every rendered temperature.
	DegreeSymbol = "°C"

	// NoDataMessage is returned by both generators for an empty dataset.
	NoDataMessage = "No Weather Data Available"

	// DateLayout renders dates as e.g. "Tuesday 06 July 2021".
	DateLayout = "Monday 02 January 2006"

	isoDateLayout = "2006-01-02"

	overviewTemplate = "%d Day Overview\n" +
		"  The lowest temperature will be %s, and will occur on %s.\n" +
		"  The highest temperature will be %s, and will occur on %s.\n" +
		"  The average low this week is %s.\n" +
		"  The average high this week is %s.\n"

	dailyTemplate = "---- %s ----\n" +
		"  Minimum Temperature: %s\n" +
		"  Maximum Temperature: %s\n\n"
)
