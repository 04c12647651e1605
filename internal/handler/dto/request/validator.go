package request

import (
	"time"

	"hotel-reservation/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("isodate", isISODate)
	}
}

// isISODate accepts calendar dates in YYYY-MM-DD form.
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(reservation.DateLayout, fl.Field().String())
	return err == nil
}
