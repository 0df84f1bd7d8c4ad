package engine

import (
	"fmt"
	"regexp"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// nctNumberPattern is the ClinicalTrials.gov identifier format.
var nctNumberPattern = regexp.MustCompile(`^NCT\d{8}$`)

func validateCounsellingRequest(r mtb.GeneticCounsellingRequest, ctx *Context) []mv.Issue {
	const entity = "GeneticCounsellingRequest"

	_, issuedIssues := validate.ShouldBeDefined(r.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, r.ID, "issuedOn"))

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		issuedIssues,
	)
}

func validateRebiopsyRequest(r mtb.RebiopsyRequest, ctx *Context) []mv.Issue {
	const entity = "RebiopsyRequest"

	_, issuedIssues := validate.ShouldBeDefined(r.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, r.ID, "issuedOn"))

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		validateSpecimenRef(r.Specimen, entity, r.ID, ctx),
		issuedIssues,
	)
}

func validateHistologyReevaluationRequest(r mtb.HistologyReevaluationRequest, ctx *Context) []mv.Issue {
	const entity = "HistologyReevaluationRequest"

	_, issuedIssues := validate.ShouldBeDefined(r.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, r.ID, "issuedOn"))

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		validateSpecimenRef(r.Specimen, entity, r.ID, ctx),
		issuedIssues,
	)
}

func validateStudyInclusionRequest(r mtb.StudyInclusionRequest, ctx *Context) []mv.Issue {
	const entity = "StudyInclusionRequest"

	_, issuedIssues := validate.ShouldBeDefined(r.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, r.ID, "issuedOn"))

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		validateDiagnosisRef(r.Diagnosis, entity, r.ID, ctx),
		validate.MustMatch(r.NCTNumber, nctNumberPattern,
			mv.Error(fmt.Sprintf("Invalid NCT number '%s'", r.NCTNumber)).At(entity, r.ID, "nctNumber")),
		issuedIssues,
	)
}
