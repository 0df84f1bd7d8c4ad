package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateCarePlan checks one board care plan: its diagnosis and every
// referenced recommendation or follow-up request must exist in the file.
func validateCarePlan(cp mtb.CarePlan, ctx *Context) []mv.Issue {
	const entity = "CarePlan"

	_, issuedIssues := validate.ShouldBeDefined(cp.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, cp.ID, "issuedOn"))

	recommendationIssues := validate.IfEmpty(cp.Recommendations,
		mv.Error("Missing TherapyRecommendations").At(entity, cp.ID, "recommendations"))
	if recommendationIssues == nil {
		recommendationIssues = validate.Each(cp.Recommendations, func(_ int, ref string) []mv.Issue {
			return validate.MustBeIn(ref, ctx.RecommendationIDs,
				mv.Fatal(fmt.Sprintf("Invalid reference to TherapyRecommendation '%s'", ref)).At(entity, cp.ID, "recommendations"))
		})
	}

	var counsellingIssues []mv.Issue
	if cp.GeneticCounsellingRequest != nil {
		counsellingIssues = validate.MustBeIn(*cp.GeneticCounsellingRequest, ctx.CounsellingIDs,
			mv.Fatal(fmt.Sprintf("Invalid reference to GeneticCounsellingRequest '%s'", *cp.GeneticCounsellingRequest)).At(entity, cp.ID, "geneticCounsellingRequest"))
	}

	return validate.All(
		validatePatientRef(cp.Patient, entity, cp.ID, ctx),
		validateDiagnosisRef(cp.Diagnosis, entity, cp.ID, ctx),
		issuedIssues,
		recommendationIssues,
		counsellingIssues,
		validate.Each(cp.RebiopsyRequests, func(_ int, ref string) []mv.Issue {
			return validate.MustBeIn(ref, ctx.RebiopsyIDs,
				mv.Fatal(fmt.Sprintf("Invalid reference to RebiopsyRequest '%s'", ref)).At(entity, cp.ID, "rebiopsyRequests"))
		}),
	)
}

// validateRecommendation checks one therapy recommendation issued by
// the board.
func validateRecommendation(r mtb.TherapyRecommendation, ctx *Context) []mv.Issue {
	const entity = "TherapyRecommendation"

	_, issuedIssues := validate.ShouldBeDefined(r.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, r.ID, "issuedOn"))

	medicationIssues := validate.IfEmpty(r.Medication,
		mv.Error("Missing Medication").At(entity, r.ID, "medication"))
	if medicationIssues == nil {
		medicationIssues = validateMedication(r.Medication,
			mv.Location{EntityType: entity, ID: r.ID, Attribute: "medication"}, ctx)
	}

	_, priorityIssues := validate.ShouldBeDefined(r.Priority,
		mv.Warning("Missing Priority").At(entity, r.ID, "priority"))

	_, evidenceIssues := validate.ShouldBeDefined(r.LevelOfEvidence,
		mv.Warning("Missing LevelOfEvidence").At(entity, r.ID, "levelOfEvidence"))

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		validateDiagnosisRef(r.Diagnosis, entity, r.ID, ctx),
		issuedIssues,
		medicationIssues,
		priorityIssues,
		evidenceIssues,
	)
}
