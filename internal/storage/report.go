package storage

const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
)

// Report is the single record for one date+shift combination.
type Report struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	Reporter string `json:"reporter"`
}
