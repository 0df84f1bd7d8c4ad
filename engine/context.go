package engine

import (
	"time"

	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/mtb"
)

// stringSet is the index representation shared with the catalog code sets.
type stringSet = map[string]struct{}

// Context carries everything a record validator needs beyond the record
// itself: the owning patient id, the cross-reference indexes built from
// the same file, the catalogs, and the checker configuration. It is
// built once per Check and never modified afterwards.
type Context struct {
	// PatientID is the id of the file's top-level patient. Every
	// patient back-reference must equal it.
	PatientID string

	// Record-id indexes for referential integrity.
	DiagnosisIDs      stringSet
	HistologyIDs      stringSet
	SpecimenIDs       stringSet
	RecommendationIDs stringSet
	CounsellingIDs    stringSet
	RebiopsyIDs       stringSet
	ClaimIDs          stringSet

	// ICD10Codes is the set of ICD-10 codes carried by the file's
	// diagnoses; a specimen must match one of them.
	ICD10Codes stringSet

	// TherapyIDs is the union of previous-guideline therapy ids, the
	// last-guideline therapy id, and every documented molecular-therapy
	// history entry id. A response must reference one of them.
	TherapyIDs stringSet

	// RespondedTherapyIDs is the set of therapy ids referenced by a
	// response. The last guideline therapy is expected among them.
	RespondedTherapyIDs stringSet

	// Catalogs resolves clinical code-system membership.
	Catalogs catalog.Service

	// DefaultICD10Version is assumed for ICD-10 codings without a
	// version of their own.
	DefaultICD10Version string

	// Now anchors the date-of-death check.
	Now time.Time
}

// newContext builds the cross-reference context for one file.
func newContext(file *mtb.File, catalogs catalog.Service, defaultICD10 string, now time.Time) *Context {
	ctx := &Context{
		PatientID:           file.Patient.ID,
		DiagnosisIDs:        make(stringSet, len(file.Diagnoses)),
		HistologyIDs:        make(stringSet, len(file.HistologyReports)),
		SpecimenIDs:         make(stringSet, len(file.Specimens)),
		RecommendationIDs:   make(stringSet, len(file.Recommendations)),
		CounsellingIDs:      make(stringSet, len(file.GeneticCounsellingRequests)),
		RebiopsyIDs:         make(stringSet, len(file.RebiopsyRequests)),
		ClaimIDs:            make(stringSet, len(file.Claims)),
		ICD10Codes:          make(stringSet, len(file.Diagnoses)),
		TherapyIDs:          make(stringSet),
		RespondedTherapyIDs: make(stringSet, len(file.Responses)),
		Catalogs:            catalogs,
		DefaultICD10Version: defaultICD10,
		Now:                 now,
	}

	for _, d := range file.Diagnoses {
		ctx.DiagnosisIDs[d.ID] = struct{}{}
		if d.ICD10 != nil {
			ctx.ICD10Codes[d.ICD10.Code] = struct{}{}
		}
	}
	for _, h := range file.HistologyReports {
		ctx.HistologyIDs[h.ID] = struct{}{}
	}
	for _, s := range file.Specimens {
		ctx.SpecimenIDs[s.ID] = struct{}{}
	}
	for _, r := range file.Recommendations {
		ctx.RecommendationIDs[r.ID] = struct{}{}
	}
	for _, r := range file.GeneticCounsellingRequests {
		ctx.CounsellingIDs[r.ID] = struct{}{}
	}
	for _, r := range file.RebiopsyRequests {
		ctx.RebiopsyIDs[r.ID] = struct{}{}
	}
	for _, c := range file.Claims {
		ctx.ClaimIDs[c.ID] = struct{}{}
	}

	for _, t := range file.PreviousGuidelineTherapies {
		ctx.TherapyIDs[t.ID] = struct{}{}
	}
	if file.LastGuidelineTherapy != nil {
		ctx.TherapyIDs[file.LastGuidelineTherapy.ID] = struct{}{}
	}
	for _, doc := range file.MolecularTherapies {
		for _, t := range doc.History {
			ctx.TherapyIDs[t.ID] = struct{}{}
		}
	}

	for _, r := range file.Responses {
		ctx.RespondedTherapyIDs[r.Therapy] = struct{}{}
	}

	return ctx
}
