package signup

import (
	"errors"
	"strings"

	"mentorloop/internal/pkg/emailcheck"
)

// Form field names shared by the workflow and the validation passes.
const (
	FieldFirstName           = "firstName"
	FieldLastName            = "lastName"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldInterest            = "interest"
	FieldHowHeard            = "howHeard"
	FieldOtherSource         = "otherSource"
	FieldParticipateResearch = "participateResearch"
	FieldNotifyLaunch        = "notifyLaunch"
)

const (
	msgFirstNameRequired = "First name is required"
	msgLastNameRequired  = "Last name is required"
	msgEmailRequired     = "Email is required"
	msgEmailInvalid      = "Please enter a valid email address"
	msgInterestRequired  = "This field is required"
	msgEmailRegistered   = "This email is already registered"
)

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}

// validateBasicInfo checks the page-1 fields. Recomputed wholesale on
// every pass.
func validateBasicInfo(fields map[string]string) FieldErrors {
	errs := FieldErrors{}

	if isBlank(fields[FieldFirstName]) {
		errs[FieldFirstName] = msgFirstNameRequired
	}
	if isBlank(fields[FieldLastName]) {
		errs[FieldLastName] = msgLastNameRequired
	}

	email := fields[FieldEmail]
	if isBlank(email) {
		errs[FieldEmail] = msgEmailRequired
		return errs
	}

	if err := emailcheck.Validate(email); err != nil {
		var typo *emailcheck.TypoError
		if errors.As(err, &typo) {
			errs[FieldEmail] = "Did you mean " + typo.Suggestion + "?"
		} else {
			errs[FieldEmail] = msgEmailInvalid
		}
	}

	return errs
}

// validateDetails checks the page-2 fields: the interest/skill text is
// the only required one.
func validateDetails(fields map[string]string) FieldErrors {
	errs := FieldErrors{}
	if isBlank(fields[FieldInterest]) {
		errs[FieldInterest] = msgInterestRequired
	}
	return errs
}
