package engine

import (
	"sync"
	"time"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/mtb"
	"github.com/gomtb/validator/validate"
)

// Checker validates MTB case files against the catalogs it was built
// with. A Checker is immutable and safe for concurrent use.
type Checker struct {
	catalogs catalog.Service
	options  *mv.Options
	metrics  *mv.Metrics
}

// New creates a Checker over the given catalogs.
func New(catalogs catalog.Service, opts ...mv.Option) *Checker {
	options := mv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Checker{
		catalogs: catalogs,
		options:  options,
		metrics:  mv.NewMetrics(),
	}
}

// Check validates one MTB file. Exactly one return value is non-nil:
// the unmodified input file when no issue was found, or the data-quality
// report carrying every accumulated issue.
func (c *Checker) Check(file *mtb.File) (*mtb.File, *mv.DataQualityReport) {
	start := time.Now()
	issues := c.check(file)

	if c.options.CollectMetrics {
		c.metrics.RecordCheck(time.Since(start), len(issues) == 0)
		c.metrics.RecordIssues(issues)
	}

	if len(issues) == 0 {
		return file, nil
	}

	patientID := ""
	if file != nil && file.Patient != nil {
		patientID = file.Patient.ID
	}
	report, _ := mv.NewDataQualityReport(patientID, issues)
	return nil, report
}

// check accumulates every issue of one file.
func (c *Checker) check(file *mtb.File) []mv.Issue {
	if file == nil {
		return []mv.Issue{mv.Fatal("Missing MTB file").At("MTBFile", "", "")}
	}

	// The anchor records must exist before anything can be validated
	// against them.
	var structural []mv.Issue
	if file.Patient == nil {
		structural = append(structural, mv.Fatal("Missing Patient").At("MTBFile", "", "patient"))
	}
	if file.Consent == nil {
		structural = append(structural, mv.Fatal("Missing Consent").At("MTBFile", "", "consent"))
	}
	if file.Episode == nil {
		structural = append(structural, mv.Fatal("Missing MTBEpisode").At("MTBFile", "", "episode"))
	}
	if structural != nil {
		return structural
	}

	ctx := newContext(file, c.catalogs, c.options.DefaultICD10Version, c.options.Now())

	issues := validate.All(
		validatePatient(*file.Patient, ctx),
		validateConsent(*file.Consent, ctx),
		validateEpisode(*file.Episode, ctx),
	)

	if file.Consent.Status == mtb.ConsentRejected {
		return append(issues, checkRejectedBody(file, ctx.PatientID)...)
	}
	return append(issues, c.checkBody(file, ctx)...)
}

// rejectedSlotMessage is attached to every populated body slot of a
// file whose patient rejected consent.
const rejectedSlotMessage = "Data must not be defined for Consent 'Rejected'"

// checkRejectedBody asserts that every body slot is absent.
func checkRejectedBody(file *mtb.File, patientID string) []mv.Issue {
	undefined := func(defined bool, slot string) []mv.Issue {
		if defined {
			return []mv.Issue{mv.Fatal(rejectedSlotMessage).At("MTBFile", patientID, slot)}
		}
		return nil
	}

	return validate.All(
		undefined(len(file.Diagnoses) > 0, "diagnoses"),
		undefined(len(file.PreviousGuidelineTherapies) > 0, "previousGuidelineTherapies"),
		undefined(file.LastGuidelineTherapy != nil, "lastGuidelineTherapy"),
		undefined(len(file.ECOGStatus) > 0, "ecogStatus"),
		undefined(len(file.Specimens) > 0, "specimens"),
		undefined(len(file.HistologyReports) > 0, "histologyReports"),
		undefined(len(file.MolecularPathologyFindings) > 0, "molecularPathologyFindings"),
		undefined(len(file.NGSReports) > 0, "ngsReports"),
		undefined(len(file.CarePlans) > 0, "carePlans"),
		undefined(len(file.Recommendations) > 0, "recommendations"),
		undefined(len(file.GeneticCounsellingRequests) > 0, "geneticCounsellingRequests"),
		undefined(len(file.RebiopsyRequests) > 0, "rebiopsyRequests"),
		undefined(len(file.HistologyReevaluationRequests) > 0, "histologyReevaluationRequests"),
		undefined(len(file.StudyInclusionRequests) > 0, "studyInclusionRequests"),
		undefined(len(file.Claims) > 0, "claims"),
		undefined(len(file.ClaimResponses) > 0, "claimResponses"),
		undefined(len(file.MolecularTherapies) > 0, "molecularTherapies"),
		undefined(len(file.Responses) > 0, "responses"),
	)
}

// checkRequired validates a body slot that is expected to be populated:
// a missing or empty slot yields the supplied issue, a populated one is
// validated element-wise.
func checkRequired[T any](items []T, missing mv.Issue, fn func(T, *Context) []mv.Issue, ctx *Context) []mv.Issue {
	if issues := validate.IfEmpty(items, missing); issues != nil {
		return issues
	}
	return validate.Each(items, func(_ int, item T) []mv.Issue {
		return fn(item, ctx)
	})
}

// checkOptional validates a body slot that may be absent without issue.
func checkOptional[T any](items []T, fn func(T, *Context) []mv.Issue, ctx *Context) []mv.Issue {
	return validate.Each(items, func(_ int, item T) []mv.Issue {
		return fn(item, ctx)
	})
}

// checkBody runs the full body validation of a consent-active file.
func (c *Checker) checkBody(file *mtb.File, ctx *Context) []mv.Issue {
	patientID := ctx.PatientID
	missing := func(severity func(string) *mv.IssueBuilder, what, slot string) mv.Issue {
		return severity("Missing "+what).At("MTBFile", patientID, slot)
	}

	lastTherapy, lastTherapyIssues := validate.MustBeDefined(file.LastGuidelineTherapy,
		missing(mv.Error, "LastGuidelineTherapy", "lastGuidelineTherapy"))
	if lastTherapyIssues == nil {
		lastTherapyIssues = validateLastGuidelineTherapy(lastTherapy, ctx)
	}

	var molecularTherapyIssues []mv.Issue
	if file.MolecularTherapies != nil {
		molecularTherapyIssues = validate.IfEmpty(file.MolecularTherapies,
			missing(mv.Warning, "MolecularTherapy documentation", "molecularTherapies"))
		if molecularTherapyIssues == nil {
			molecularTherapyIssues = validate.Each(file.MolecularTherapies,
				func(_ int, doc mtb.MolecularTherapyDocumentation) []mv.Issue {
					return validate.Each(doc.History, func(_ int, t mtb.MolecularTherapy) []mv.Issue {
						return validateMolecularTherapy(t, ctx)
					})
				})
		}
	}

	return validate.All(
		checkRequired(file.Diagnoses,
			missing(mv.Error, "Diagnoses", "diagnoses"), validateDiagnosis, ctx),
		checkRequired(file.PreviousGuidelineTherapies,
			missing(mv.Warning, "PreviousGuidelineTherapies", "previousGuidelineTherapies"), validatePreviousGuidelineTherapy, ctx),
		lastTherapyIssues,
		checkRequired(file.ECOGStatus,
			missing(mv.Warning, "ECOGStatus records", "ecogStatus"), validateECOGStatus, ctx),
		checkRequired(file.Specimens,
			missing(mv.Warning, "Specimens", "specimens"), validateSpecimen, ctx),
		checkRequired(file.HistologyReports,
			missing(mv.Warning, "HistologyReports", "histologyReports"), validateHistologyReport, ctx),
		checkRequired(file.MolecularPathologyFindings,
			missing(mv.Warning, "MolecularPathologyFindings", "molecularPathologyFindings"), validateMolecularPathologyFinding, ctx),
		checkRequired(file.NGSReports,
			missing(mv.Warning, "SomaticNGSReports", "ngsReports"), validateNGSReport, ctx),
		checkRequired(file.CarePlans,
			missing(mv.Warning, "CarePlans", "carePlans"), validateCarePlan, ctx),
		checkRequired(file.Recommendations,
			missing(mv.Warning, "TherapyRecommendations", "recommendations"), validateRecommendation, ctx),
		checkOptional(file.GeneticCounsellingRequests, validateCounsellingRequest, ctx),
		checkOptional(file.RebiopsyRequests, validateRebiopsyRequest, ctx),
		checkOptional(file.HistologyReevaluationRequests, validateHistologyReevaluationRequest, ctx),
		checkOptional(file.StudyInclusionRequests, validateStudyInclusionRequest, ctx),
		checkRequired(file.Claims,
			missing(mv.Warning, "Claims", "claims"), validateClaim, ctx),
		checkRequired(file.ClaimResponses,
			missing(mv.Warning, "ClaimResponses", "claimResponses"), validateClaimResponse, ctx),
		molecularTherapyIssues,
		checkRequired(file.Responses,
			missing(mv.Warning, "Responses", "responses"), validateResponse, ctx),
	)
}

// BatchResult pairs one input file with its check outcome.
type BatchResult struct {
	File   *mtb.File
	Report *mv.DataQualityReport
}

// CheckBatch validates multiple files in parallel with a bounded worker
// pool. Results keep the input order.
func (c *Checker) CheckBatch(files []*mtb.File) []BatchResult {
	results := make([]BatchResult, len(files))

	workers := c.options.WorkerCount
	if workers <= 0 {
		workers = 4
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(idx int, f *mtb.File) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			ok, report := c.Check(f)
			results[idx] = BatchResult{File: ok, Report: report}
		}(i, file)
	}

	wg.Wait()
	return results
}

// Metrics returns the checker's metric counters.
func (c *Checker) Metrics() *mv.Metrics {
	return c.metrics
}

// Options returns the checker's configuration.
func (c *Checker) Options() *mv.Options {
	return c.options
}
