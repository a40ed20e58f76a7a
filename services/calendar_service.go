package services

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/DreKwasi/brazilian-ecom-analysis/config"
	"github.com/DreKwasi/brazilian-ecom-analysis/models"
)

// CalendarNames holds the canonical display order of day and month names
// used to sort categorical time axes.
type CalendarNames struct {
	DayNames   []string `json:"day_names"`
	MonthNames []string `json:"month_names"`
}

var (
	calOnce  sync.Once
	calNames CalendarNames
	calErr   error
)

// LoadCalendarNames reads the calendar-names asset once per process.
func LoadCalendarNames() (CalendarNames, error) {
	calOnce.Do(func() {
		data, err := os.ReadFile(config.CalendarNamesPath())
		if err != nil {
			calErr = models.NewDataIntegrityError("read calendar names", err)
			return
		}
		if err := json.Unmarshal(data, &calNames); err != nil {
			calErr = models.NewDataIntegrityError("parse calendar names", err)
		}
	})
	return calNames, calErr
}
