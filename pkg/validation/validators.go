package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"matchdb-jobs-service/internal/domain"
)

// E164-like phone: optional +, digits 7-15 length
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("job_type", JobType)
	_ = v.RegisterValidation("work_mode", WorkMode)
}

// ValidPhone validates a phone number structure. Empty is allowed; pair with
// required when the field is mandatory.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// JobType validates against the closed job-type vocabulary.
func JobType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.ValidJobType(val)
}

// WorkMode validates against the work-mode vocabulary.
func WorkMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", domain.WorkModeRemote, domain.WorkModeOnsite, domain.WorkModeHybrid:
		return true
	}
	return false
}
