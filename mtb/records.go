package mtb

// Patient is the subject of the case file. Every other record carries a
// back-reference to its id.
type Patient struct {
	ID          string  `json:"id"`
	Gender      Gender  `json:"gender"`
	BirthDate   *Date   `json:"birthDate,omitempty"`
	Insurance   *string `json:"insurance,omitempty"`
	DateOfDeath *Date   `json:"dateOfDeath,omitempty"`
}

// Consent records the patient-consent state governing the file body.
type Consent struct {
	ID      string        `json:"id"`
	Patient string        `json:"patient"`
	Status  ConsentStatus `json:"status"`
}

// Episode is the MTB episode of care the file belongs to.
type Episode struct {
	ID      string `json:"id"`
	Patient string `json:"patient"`
	Period  Period `json:"period"`
}

// Diagnosis is a tumor diagnosis, coded in ICD-10-GM and optionally in
// ICD-O-3 topography, with references to its histology reports.
type Diagnosis struct {
	ID               string   `json:"id"`
	Patient          string   `json:"patient"`
	RecordedOn       *Date    `json:"recordedOn,omitempty"`
	ICD10            *Coding  `json:"icd10,omitempty"`
	ICDO3T           *Coding  `json:"icdO3T,omitempty"`
	HistologyResults []string `json:"histologyResults,omitempty"`
}

// PreviousGuidelineTherapy is a guideline therapy that preceded the
// last one.
type PreviousGuidelineTherapy struct {
	ID          string   `json:"id"`
	Patient     string   `json:"patient"`
	Diagnosis   string   `json:"diagnosis"`
	TherapyLine *int     `json:"therapyLine,omitempty"`
	Medication  []Coding `json:"medication,omitempty"`
}

// LastGuidelineTherapy is the most recent guideline therapy before the
// MTB presentation.
type LastGuidelineTherapy struct {
	ID            string   `json:"id"`
	Patient       string   `json:"patient"`
	Diagnosis     string   `json:"diagnosis"`
	TherapyLine   *int     `json:"therapyLine,omitempty"`
	Medication    []Coding `json:"medication,omitempty"`
	Period        Period   `json:"period"`
	ReasonStopped *Coding  `json:"reasonStopped,omitempty"`
}

// ECOGStatus is one performance-status observation.
type ECOGStatus struct {
	ID            string  `json:"id"`
	Patient       string  `json:"patient"`
	EffectiveDate *Date   `json:"effectiveDate,omitempty"`
	Value         *Coding `json:"value,omitempty"`
}

// SpecimenCollection describes how and when a specimen was taken.
type SpecimenCollection struct {
	Date         *Date   `json:"date,omitempty"`
	Localization *string `json:"localization,omitempty"`
	Method       *string `json:"method,omitempty"`
}

// Specimen is a tumor sample. Its ICD-10 coding ties it to a diagnosis
// of the same patient.
type Specimen struct {
	ID         string              `json:"id"`
	Patient    string              `json:"patient"`
	ICD10      *Coding             `json:"icd10,omitempty"`
	Type       *string             `json:"type,omitempty"`
	Collection *SpecimenCollection `json:"collection,omitempty"`
}

// TumorMorphology is the ICD-O-3-M coded morphology finding of a
// histology report.
type TumorMorphology struct {
	ID       string  `json:"id"`
	Patient  string  `json:"patient"`
	Specimen string  `json:"specimen"`
	Value    *Coding `json:"value,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// TumorCellContent is the fraction of tumor cells in a specimen,
// determined either histologically or bioinformatically.
type TumorCellContent struct {
	ID       string                 `json:"id"`
	Specimen string                 `json:"specimen"`
	Method   TumorCellContentMethod `json:"method"`
	Value    float64                `json:"value"`
}

// HistologyReport is the histologic workup of one specimen.
type HistologyReport struct {
	ID               string            `json:"id"`
	Patient          string            `json:"patient"`
	Specimen         string            `json:"specimen"`
	IssuedOn         *Date             `json:"issuedOn,omitempty"`
	TumorMorphology  *TumorMorphology  `json:"tumorMorphology,omitempty"`
	TumorCellContent *TumorCellContent `json:"tumorCellContent,omitempty"`
}

// MolecularPathologyFinding is a free-text molecular-pathology result
// for one specimen.
type MolecularPathologyFinding struct {
	ID       string  `json:"id"`
	Patient  string  `json:"patient"`
	Specimen string  `json:"specimen"`
	IssuedOn *Date   `json:"issuedOn,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// TMB is the tumor mutational burden in mutations per megabase.
type TMB struct {
	Value float64 `json:"value"`
}

// SomaticNGSReport carries the sequencing results for one specimen.
type SomaticNGSReport struct {
	ID               string            `json:"id"`
	Patient          string            `json:"patient"`
	Specimen         string            `json:"specimen"`
	IssuedOn         *Date             `json:"issuedOn,omitempty"`
	SequencingType   *string           `json:"sequencingType,omitempty"`
	TumorCellContent *TumorCellContent `json:"tumorCellContent,omitempty"`
	BRCAness         *float64          `json:"brcaness,omitempty"`
	MSI              *float64          `json:"msi,omitempty"`
	TMB              *TMB              `json:"tmb,omitempty"`
}

// CarePlan is the MTB board's plan for one diagnosis, referencing its
// recommendations and follow-up requests by id.
type CarePlan struct {
	ID                        string   `json:"id"`
	Patient                   string   `json:"patient"`
	Diagnosis                 string   `json:"diagnosis"`
	IssuedOn                  *Date    `json:"issuedOn,omitempty"`
	Description               *string  `json:"description,omitempty"`
	Recommendations           []string `json:"recommendations,omitempty"`
	GeneticCounsellingRequest *string  `json:"geneticCounsellingRequest,omitempty"`
	RebiopsyRequests          []string `json:"rebiopsyRequests,omitempty"`
}

// LevelOfEvidence grades a therapy recommendation.
type LevelOfEvidence struct {
	Grading   *Coding  `json:"grading,omitempty"`
	Addendums []Coding `json:"addendums,omitempty"`
}

// TherapyRecommendation is one medication recommendation issued by the
// board.
type TherapyRecommendation struct {
	ID              string           `json:"id"`
	Patient         string           `json:"patient"`
	Diagnosis       string           `json:"diagnosis"`
	IssuedOn        *Date            `json:"issuedOn,omitempty"`
	Medication      []Coding         `json:"medication,omitempty"`
	Priority        *int             `json:"priority,omitempty"`
	LevelOfEvidence *LevelOfEvidence `json:"levelOfEvidence,omitempty"`
}

// GeneticCounsellingRequest asks for genetic counselling of the patient.
type GeneticCounsellingRequest struct {
	ID       string  `json:"id"`
	Patient  string  `json:"patient"`
	IssuedOn *Date   `json:"issuedOn,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}

// RebiopsyRequest asks for a new biopsy of a specimen's tumor.
type RebiopsyRequest struct {
	ID       string `json:"id"`
	Patient  string `json:"patient"`
	Specimen string `json:"specimen"`
	IssuedOn *Date  `json:"issuedOn,omitempty"`
}

// HistologyReevaluationRequest asks for a re-read of a specimen's
// histology.
type HistologyReevaluationRequest struct {
	ID       string `json:"id"`
	Patient  string `json:"patient"`
	Specimen string `json:"specimen"`
	IssuedOn *Date  `json:"issuedOn,omitempty"`
}

// StudyInclusionRequest asks for inclusion of the patient in a clinical
// trial, identified by its ClinicalTrials.gov NCT number.
type StudyInclusionRequest struct {
	ID        string `json:"id"`
	Patient   string `json:"patient"`
	Diagnosis string `json:"diagnosis"`
	NCTNumber string `json:"nctNumber"`
	IssuedOn  *Date  `json:"issuedOn,omitempty"`
}

// Claim is a cost-coverage claim for a recommended therapy.
type Claim struct {
	ID      string `json:"id"`
	Patient string `json:"patient"`
	Therapy string `json:"therapy"`
}

// ClaimResponse is the insurer's answer to a claim.
type ClaimResponse struct {
	ID      string  `json:"id"`
	Patient string  `json:"patient"`
	Claim   string  `json:"claim"`
	Status  *string `json:"status,omitempty"`
	Reason  *Coding `json:"reason,omitempty"`
}

// MolecularTherapy is one entry in the documented history of a
// recommended therapy. Status discriminates the variants; only started
// therapies carry medication and a period.
type MolecularTherapy struct {
	ID         string                 `json:"id"`
	Patient    string                 `json:"patient"`
	Status     MolecularTherapyStatus `json:"status"`
	RecordedOn *Date                  `json:"recordedOn,omitempty"`
	BasedOn    string                 `json:"basedOn"`
	Period     *Period                `json:"period,omitempty"`
	Medication []Coding               `json:"medication,omitempty"`
	Reason     *Coding                `json:"reason,omitempty"`
	Note       *string                `json:"note,omitempty"`
}

// MolecularTherapyDocumentation is the full recorded history of one
// recommended therapy, newest entry last.
type MolecularTherapyDocumentation struct {
	History []MolecularTherapy `json:"history"`
}

// Response is a RECIST response assessment of one therapy.
type Response struct {
	ID            string  `json:"id"`
	Patient       string  `json:"patient"`
	Therapy       string  `json:"therapy"`
	EffectiveDate *Date   `json:"effectiveDate,omitempty"`
	Value         *Coding `json:"value,omitempty"`
}
