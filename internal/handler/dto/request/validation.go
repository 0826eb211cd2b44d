package request

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the scheduling rules to gin's binding validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("slot_minutes", validateSlotMinutes); err != nil {
			return
		}
		err = v.RegisterValidation("weekday", validateWeekday)
	})
	return err
}

// validateSlotMinutes accepts the supported slot lengths: 15, 30 or 60 minutes.
func validateSlotMinutes(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 15, 30, 60:
		return true
	default:
		return false
	}
}

// validateWeekday accepts 0 (Sunday) through 6 (Saturday).
func validateWeekday(fl validator.FieldLevel) bool {
	d := fl.Field().Int()
	return d >= 0 && d <= 6
}
