package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

func validateClaim(c mtb.Claim, ctx *Context) []mv.Issue {
	const entity = "Claim"
	return validate.All(
		validatePatientRef(c.Patient, entity, c.ID, ctx),
		validate.MustBeIn(c.Therapy, ctx.RecommendationIDs,
			mv.Fatal(fmt.Sprintf("Invalid reference to TherapyRecommendation '%s'", c.Therapy)).At(entity, c.ID, "therapy")),
	)
}

func validateClaimResponse(c mtb.ClaimResponse, ctx *Context) []mv.Issue {
	const entity = "ClaimResponse"

	_, reasonIssues := validate.ShouldBeDefined(c.Reason,
		mv.Warning("Missing Reason").At(entity, c.ID, "reason"))

	return validate.All(
		validatePatientRef(c.Patient, entity, c.ID, ctx),
		validate.MustBeIn(c.Claim, ctx.ClaimIDs,
			mv.Fatal(fmt.Sprintf("Invalid reference to Claim '%s'", c.Claim)).At(entity, c.ID, "claim")),
		reasonIssues,
	)
}
