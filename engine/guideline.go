package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateTherapyLine checks the optional therapy line of a guideline
// therapy: missing is a warning, a present value must be in 0..9.
func validateTherapyLine(line *int, entityType, id string) []mv.Issue {
	value, issues := validate.ShouldBeDefined(line,
		mv.Warning("Missing TherapyLine").At(entityType, id, "therapyLine"))
	if issues != nil {
		return issues
	}
	return validate.MustBeIntInInterval(value, 0, 9,
		mv.Error(fmt.Sprintf("Invalid TherapyLine %d, must be in [0,9]", value)).At(entityType, id, "therapyLine"))
}

// validateDiagnosisRef checks a foreign reference into the file's
// diagnosis index.
func validateDiagnosisRef(ref string, entityType, id string, ctx *Context) []mv.Issue {
	return validate.MustBeIn(ref, ctx.DiagnosisIDs,
		mv.Fatal(fmt.Sprintf("Invalid reference to Diagnosis '%s'", ref)).At(entityType, id, "diagnosis"))
}

func validatePreviousGuidelineTherapy(t mtb.PreviousGuidelineTherapy, ctx *Context) []mv.Issue {
	const entity = "PreviousGuidelineTherapy"
	return validate.All(
		validatePatientRef(t.Patient, entity, t.ID, ctx),
		validateDiagnosisRef(t.Diagnosis, entity, t.ID, ctx),
		validateTherapyLine(t.TherapyLine, entity, t.ID),
		validateMedication(t.Medication, mv.Location{EntityType: entity, ID: t.ID, Attribute: "medication"}, ctx),
	)
}

// validateLastGuidelineTherapy additionally expects a stop reason and a
// response assessment referencing the therapy.
func validateLastGuidelineTherapy(t mtb.LastGuidelineTherapy, ctx *Context) []mv.Issue {
	const entity = "LastGuidelineTherapy"

	_, reasonIssues := validate.ShouldBeDefined(t.ReasonStopped,
		mv.Warning("Missing Reason Stopped").At(entity, t.ID, "reasonStopped"))

	return validate.All(
		validatePatientRef(t.Patient, entity, t.ID, ctx),
		validateDiagnosisRef(t.Diagnosis, entity, t.ID, ctx),
		validateTherapyLine(t.TherapyLine, entity, t.ID),
		validateMedication(t.Medication, mv.Location{EntityType: entity, ID: t.ID, Attribute: "medication"}, ctx),
		reasonIssues,
		validate.MustBeIn(t.ID, ctx.RespondedTherapyIDs,
			mv.Warning("Missing Response").At(entity, t.ID, "response")),
	)
}
