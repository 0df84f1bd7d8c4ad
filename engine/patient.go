package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validatePatient checks the top-level patient record. BirthDate is
// required, insurance recommended, date of death optional; a present
// date of death must lie strictly between birth date and now.
func validatePatient(p mtb.Patient, ctx *Context) []mv.Issue {
	const entity = "Patient"

	birthDate, birthIssues := validate.MustBeDefined(p.BirthDate,
		mv.Error("Missing BirthDate").At(entity, p.ID, "birthdate"))

	_, insuranceIssues := validate.ShouldBeDefined(p.Insurance,
		mv.Warning("Missing Health Insurance").At(entity, p.ID, "insurance"))

	dateOfDeath, deathIssues := validate.CouldBeDefined(p.DateOfDeath,
		mv.Info("Missing DateOfDeath").At(entity, p.ID, "dateOfDeath"))

	issues := validate.All(birthIssues, insuranceIssues, deathIssues)

	if p.DateOfDeath != nil {
		issues = append(issues, validate.MustBeBefore(dateOfDeath.Time, ctx.Now,
			mv.Error("DateOfDeath must be in the past").At(entity, p.ID, "dateOfDeath"))...)
		if p.BirthDate != nil {
			issues = append(issues, validate.MustBeAfter(dateOfDeath.Time, birthDate.Time,
				mv.Error("DateOfDeath must be after BirthDate").At(entity, p.ID, "dateOfDeath"))...)
		}
	}

	return issues
}

// consentStatuses are the admissible consent states.
var consentStatuses = map[mtb.ConsentStatus]struct{}{
	mtb.ConsentActive:   {},
	mtb.ConsentRejected: {},
}

func validateConsent(c mtb.Consent, ctx *Context) []mv.Issue {
	const entity = "Consent"
	return validate.All(
		validatePatientRef(c.Patient, entity, c.ID, ctx),
		validate.MustBeIn(c.Status, consentStatuses,
			mv.Error(fmt.Sprintf("Invalid Consent status '%s'", c.Status)).At(entity, c.ID, "status")),
	)
}

func validateEpisode(e mtb.Episode, ctx *Context) []mv.Issue {
	const entity = "MTBEpisode"
	_, startIssues := validate.MustBeDefined(e.Period.Start,
		mv.Error("Missing Episode start date").At(entity, e.ID, "period"))
	return validate.All(
		validatePatientRef(e.Patient, entity, e.ID, ctx),
		startIssues,
	)
}

func validateECOGStatus(e mtb.ECOGStatus, ctx *Context) []mv.Issue {
	return validatePatientRef(e.Patient, "ECOGStatus", e.ID, ctx)
}
