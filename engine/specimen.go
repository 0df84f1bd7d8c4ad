package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateSpecimen checks one tumor sample. Its ICD-10 coding must
// parse and match a diagnosis of the same patient; a specimen no
// diagnosis justifies makes the file unusable.
func validateSpecimen(s mtb.Specimen, ctx *Context) []mv.Issue {
	const entity = "Specimen"

	icd10, icd10Issues := validate.MustBeDefined(s.ICD10,
		mv.Error("Missing ICD-10-GM coding").At(entity, s.ID, "icd10"))
	if icd10Issues == nil {
		icd10Issues = validateSpecimenICD10(icd10, s.ID, ctx)
	}

	_, typeIssues := validate.ShouldBeDefined(s.Type,
		mv.Warning("Missing Specimen type").At(entity, s.ID, "type"))

	_, collectionIssues := validate.ShouldBeDefined(s.Collection,
		mv.Warning("Missing Specimen collection").At(entity, s.ID, "collection"))

	return validate.All(
		validatePatientRef(s.Patient, entity, s.ID, ctx),
		icd10Issues,
		typeIssues,
		collectionIssues,
	)
}

// validateSpecimenICD10 parses the coding's version and requires the
// code among the ICD-10 codes of the file's diagnoses.
func validateSpecimenICD10(coding mtb.Coding, specimenID string, ctx *Context) []mv.Issue {
	loc := mv.Location{EntityType: "Specimen", ID: specimenID, Attribute: "icd10"}

	version := ctx.DefaultICD10Version
	if coding.Version != nil {
		version = *coding.Version
	}
	_, err := catalog.ParseICD10Version(version)
	if issues := validate.IfError(err,
		mv.Error(fmt.Sprintf("Unknown ICD-10-GM version '%s'", version)).AtLocation(loc)); issues != nil {
		return issues
	}

	return validate.MustBeIn(coding.Code, ctx.ICD10Codes,
		mv.Fatal(fmt.Sprintf("No Diagnosis with ICD-10-GM code '%s'", coding.Code)).AtLocation(loc))
}

func validateMolecularPathologyFinding(f mtb.MolecularPathologyFinding, ctx *Context) []mv.Issue {
	const entity = "MolecularPathologyFinding"

	_, issuedIssues := validate.ShouldBeDefined(f.IssuedOn,
		mv.Warning("Missing IssuedOn date").At(entity, f.ID, "issuedOn"))

	return validate.All(
		validatePatientRef(f.Patient, entity, f.ID, ctx),
		validateSpecimenRef(f.Specimen, entity, f.ID, ctx),
		issuedIssues,
	)
}

// validateSpecimenRef checks a foreign reference into the file's
// specimen index.
func validateSpecimenRef(ref string, entityType, id string, ctx *Context) []mv.Issue {
	return validate.MustBeIn(ref, ctx.SpecimenIDs,
		mv.Fatal(fmt.Sprintf("Invalid reference to Specimen '%s'", ref)).At(entityType, id, "specimen"))
}
