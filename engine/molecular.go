package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateMolecularTherapy checks one history entry of a documented
// molecular therapy. Every variant carries the patient back-reference
// and the recommendation it is based on; only started therapies carry
// medication.
func validateMolecularTherapy(t mtb.MolecularTherapy, ctx *Context) []mv.Issue {
	const entity = "MolecularTherapy"

	issues := validate.All(
		validatePatientRef(t.Patient, entity, t.ID, ctx),
		validate.MustBeIn(t.BasedOn, ctx.RecommendationIDs,
			mv.Fatal(fmt.Sprintf("Invalid reference to TherapyRecommendation '%s'", t.BasedOn)).At(entity, t.ID, "basedOn")),
	)

	switch t.Status {
	case mtb.TherapyNotDone:
		// A therapy that never started carries no medication.
	case mtb.TherapyStopped, mtb.TherapyCompleted, mtb.TherapyOngoing:
		issues = append(issues, validateMedication(t.Medication,
			mv.Location{EntityType: entity, ID: t.ID, Attribute: "medication"}, ctx)...)
	default:
		issues = append(issues,
			mv.Error(fmt.Sprintf("Invalid MolecularTherapy status '%s'", t.Status)).At(entity, t.ID, "status"))
	}

	return issues
}

func validateResponse(r mtb.Response, ctx *Context) []mv.Issue {
	const entity = "Response"

	_, effectiveIssues := validate.ShouldBeDefined(r.EffectiveDate,
		mv.Warning("Missing EffectiveDate").At(entity, r.ID, "effectiveDate"))

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		validate.MustBeIn(r.Therapy, ctx.TherapyIDs,
			mv.Fatal(fmt.Sprintf("Invalid reference to Therapy '%s'", r.Therapy)).At(entity, r.ID, "therapy")),
		effectiveIssues,
	)
}
