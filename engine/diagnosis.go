package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateDiagnosis checks one tumor diagnosis: the ICD-10 coding is
// required and catalog-checked, the topography coding is optional but
// catalog-checked when present, and every referenced histology report
// must exist in the file.
func validateDiagnosis(d mtb.Diagnosis, ctx *Context) []mv.Issue {
	const entity = "Diagnosis"

	icd10, icd10Issues := validate.MustBeDefined(d.ICD10,
		mv.Error("Missing ICD-10-GM coding").At(entity, d.ID, "icd10"))
	if icd10Issues == nil {
		icd10Issues = validateICD10(icd10, mv.Location{EntityType: entity, ID: d.ID, Attribute: "icd10"}, ctx)
	}

	icdO3T, icdO3TIssues := validate.CouldBeDefined(d.ICDO3T,
		mv.Info("Missing ICD-O-3-T coding").At(entity, d.ID, "icdO3T"))
	if icdO3TIssues == nil {
		icdO3TIssues = validateICDO3T(icdO3T, mv.Location{EntityType: entity, ID: d.ID, Attribute: "icdO3T"}, ctx)
	}

	_, recordedIssues := validate.ShouldBeDefined(d.RecordedOn,
		mv.Warning("Missing RecordedOn date").At(entity, d.ID, "recordedOn"))

	return validate.All(
		validatePatientRef(d.Patient, entity, d.ID, ctx),
		recordedIssues,
		icd10Issues,
		icdO3TIssues,
		validate.Each(d.HistologyResults, func(_ int, ref string) []mv.Issue {
			return validate.MustBeIn(ref, ctx.HistologyIDs,
				mv.Fatal(fmt.Sprintf("Invalid reference to HistologyReport '%s'", ref)).At(entity, d.ID, "histologyReports"))
		}),
	)
}
