package engine

import (
	"fmt"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// validateICD10 checks an ICD-10-GM coding: the version literal must
// parse (the configured default applies when omitted) and the code must
// be in the catalog for that version. The second check depends on the
// first and is skipped when it fails.
func validateICD10(coding mtb.Coding, loc mv.Location, ctx *Context) []mv.Issue {
	version := ctx.DefaultICD10Version
	if coding.Version != nil {
		version = *coding.Version
	}

	v, err := catalog.ParseICD10Version(version)
	if issues := validate.IfError(err,
		mv.Error(fmt.Sprintf("Unknown ICD-10-GM version '%s'", version)).AtLocation(loc)); issues != nil {
		return issues
	}

	return validate.MustBeIn(coding.Code, ctx.Catalogs.Codings(v),
		mv.Error(fmt.Sprintf("Invalid ICD-10-GM code '%s' for version '%s'", coding.Code, version)).AtLocation(loc))
}

// validateICDO3T checks an ICD-O-3 topography coding. Unlike ICD-10,
// the catalog version must be present.
func validateICDO3T(coding mtb.Coding, loc mv.Location, ctx *Context) []mv.Issue {
	version, issues := validate.MustBeDefined(coding.Version,
		mv.Error("Missing ICD-O-3 version").AtLocation(loc))
	if issues != nil {
		return issues
	}

	v, err := catalog.ParseICDO3Version(version)
	if issues := validate.IfError(err,
		mv.Error(fmt.Sprintf("Unknown ICD-O-3 version '%s'", version)).AtLocation(loc)); issues != nil {
		return issues
	}

	return validate.MustBeIn(coding.Code, ctx.Catalogs.Topography(v),
		mv.Error(fmt.Sprintf("Invalid ICD-O-3-T code '%s'", coding.Code)).AtLocation(loc))
}

// validateICDO3M checks an ICD-O-3 morphology coding.
func validateICDO3M(coding mtb.Coding, loc mv.Location, ctx *Context) []mv.Issue {
	version, issues := validate.MustBeDefined(coding.Version,
		mv.Error("Missing ICD-O-3 version").AtLocation(loc))
	if issues != nil {
		return issues
	}

	v, err := catalog.ParseICDO3Version(version)
	if issues := validate.IfError(err,
		mv.Error(fmt.Sprintf("Unknown ICD-O-3 version '%s'", version)).AtLocation(loc)); issues != nil {
		return issues
	}

	return validate.MustBeIn(coding.Code, ctx.Catalogs.Morphology(v),
		mv.Error(fmt.Sprintf("Invalid ICD-O-3-M code '%s'", coding.Code)).AtLocation(loc))
}

// validateMedication checks every coding of a medication list against
// the ATC catalog.
func validateMedication(medication []mtb.Coding, loc mv.Location, ctx *Context) []mv.Issue {
	return validate.Each(medication, func(_ int, coding mtb.Coding) []mv.Issue {
		return validate.MustBeIn(coding.Code, ctx.Catalogs.Medications(),
			mv.Error(fmt.Sprintf("Invalid ATC medication code '%s'", coding.Code)).AtLocation(loc))
	})
}

// validatePatientRef checks the patient back-reference every record
// carries against the file's top-level patient id.
func validatePatientRef(ref string, entityType, id string, ctx *Context) []mv.Issue {
	return validate.MustEqual(ref, ctx.PatientID,
		mv.Fatal(fmt.Sprintf("Invalid reference to Patient '%s'", ref)).At(entityType, id, "patient"))
}
