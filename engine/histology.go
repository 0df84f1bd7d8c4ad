package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateTumorCellContent checks a tumor-cell-content finding against
// the method its carrier requires and the closed interval [0,1].
func validateTumorCellContent(tcc mtb.TumorCellContent, expected mtb.TumorCellContentMethod, owner mv.Location) []mv.Issue {
	methodLoc := owner
	methodLoc.Attribute = owner.Attribute + ".method"
	valueLoc := owner
	valueLoc.Attribute = owner.Attribute + ".value"

	return validate.All(
		validate.MustEqual(tcc.Method, expected,
			mv.Error(fmt.Sprintf("Invalid TumorCellContent method '%s', expected '%s'", tcc.Method, expected)).AtLocation(methodLoc)),
		validate.MustBeInInterval(tcc.Value, 0.0, 1.0,
			mv.Error(fmt.Sprintf("TumorCellContent value %g not in [0.0,1.0]", tcc.Value)).AtLocation(valueLoc)),
	)
}

// validateHistologyReport checks the histologic workup of a specimen:
// the specimen must exist, the morphology must carry a valid ICD-O-3-M
// coding, and the tumor-cell content must be histologically determined.
func validateHistologyReport(h mtb.HistologyReport, ctx *Context) []mv.Issue {
	const entity = "HistologyReport"

	_, issuedIssues := validate.MustBeDefined(h.IssuedOn,
		mv.Error("Missing IssuedOn date").At(entity, h.ID, "issuedOn"))

	morphology, morphologyIssues := validate.MustBeDefined(h.TumorMorphology,
		mv.Error("Missing TumorMorphology").At(entity, h.ID, "tumorMorphology"))
	if morphologyIssues == nil {
		value, valueIssues := validate.MustBeDefined(morphology.Value,
			mv.Error("Missing ICD-O-3-M coding").At(entity, h.ID, "tumorMorphology"))
		if valueIssues == nil {
			valueIssues = validateICDO3M(value,
				mv.Location{EntityType: entity, ID: h.ID, Attribute: "tumorMorphology"}, ctx)
		}
		morphologyIssues = valueIssues
	}

	tcc, tccIssues := validate.MustBeDefined(h.TumorCellContent,
		mv.Error("Missing TumorCellContent").At(entity, h.ID, "tumorCellContent"))
	if tccIssues == nil {
		tccIssues = validateTumorCellContent(tcc, mtb.TumorCellContentHistologic,
			mv.Location{EntityType: entity, ID: h.ID, Attribute: "tumorCellContent"})
	}

	return validate.All(
		validatePatientRef(h.Patient, entity, h.ID, ctx),
		validateSpecimenRef(h.Specimen, entity, h.ID, ctx),
		issuedIssues,
		morphologyIssues,
		tccIssues,
	)
}
