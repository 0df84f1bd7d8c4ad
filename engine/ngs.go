package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// Closed value ranges of the NGS markers.
const (
	brcanessMin = 0.0
	brcanessMax = 1.0
	msiMin      = 0.0
	msiMax      = 2.0
	tmbMin      = 0.0
	tmbMax      = 1_000_000.0 // mut/Mb
)

// validateNGSReport checks a somatic NGS report: the specimen must
// exist, the tumor-cell content must be bioinformatically determined,
// and the molecular markers must lie in their documented ranges.
func validateNGSReport(r mtb.SomaticNGSReport, ctx *Context) []mv.Issue {
	const entity = "SomaticNGSReport"

	_, issuedIssues := validate.MustBeDefined(r.IssuedOn,
		mv.Error("Missing IssuedOn date").At(entity, r.ID, "issuedOn"))

	tcc, tccIssues := validate.MustBeDefined(r.TumorCellContent,
		mv.Error("Missing TumorCellContent").At(entity, r.ID, "tumorCellContent"))
	if tccIssues == nil {
		tccIssues = validateTumorCellContent(tcc, mtb.TumorCellContentBioinformatic,
			mv.Location{EntityType: entity, ID: r.ID, Attribute: "tumorCellContent"})
	}

	brcaness, brcanessIssues := validate.CouldBeDefined(r.BRCAness,
		mv.Info("Missing BRCAness value").At(entity, r.ID, "brcaness"))
	if brcanessIssues == nil {
		brcanessIssues = validate.MustBeInInterval(brcaness, brcanessMin, brcanessMax,
			mv.Error(fmt.Sprintf("BRCAness value %g not in [%.1f,%.1f]", brcaness, brcanessMin, brcanessMax)).At(entity, r.ID, "brcaness"))
	}

	msi, msiIssues := validate.CouldBeDefined(r.MSI,
		mv.Info("Missing MSI value").At(entity, r.ID, "msi"))
	if msiIssues == nil {
		msiIssues = validate.MustBeInInterval(msi, msiMin, msiMax,
			mv.Error(fmt.Sprintf("MSI value %g not in [%.1f,%.1f]", msi, msiMin, msiMax)).At(entity, r.ID, "msi"))
	}

	tmb, tmbIssues := validate.MustBeDefined(r.TMB,
		mv.Error("Missing TMB value").At(entity, r.ID, "tmb"))
	if tmbIssues == nil {
		tmbIssues = validate.MustBeInInterval(tmb.Value, tmbMin, tmbMax,
			mv.Error(fmt.Sprintf("TMB value %g not in [%.1f,%.1f]", tmb.Value, tmbMin, tmbMax)).At(entity, r.ID, "tmb"))
	}

	return validate.All(
		validatePatientRef(r.Patient, entity, r.ID, ctx),
		validateSpecimenRef(r.Specimen, entity, r.ID, ctx),
		issuedIssues,
		tccIssues,
		brcanessIssues,
		msiIssues,
		tmbIssues,
	)
}
