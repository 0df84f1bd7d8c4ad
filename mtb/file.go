package mtb

// File is the complete MTB case file for one patient as submitted by a
// documentation system. Patient, consent, and episode are always
// expected; every other slot is part of the file body and must be
// absent when consent is rejected.
type File struct {
	Patient *Patient `json:"patient"`
	Consent *Consent `json:"consent"`
	Episode *Episode `json:"episode"`

	Diagnoses                     []Diagnosis                     `json:"diagnoses,omitempty"`
	PreviousGuidelineTherapies    []PreviousGuidelineTherapy      `json:"previousGuidelineTherapies,omitempty"`
	LastGuidelineTherapy          *LastGuidelineTherapy           `json:"lastGuidelineTherapy,omitempty"`
	ECOGStatus                    []ECOGStatus                    `json:"ecogStatus,omitempty"`
	Specimens                     []Specimen                      `json:"specimens,omitempty"`
	HistologyReports              []HistologyReport               `json:"histologyReports,omitempty"`
	MolecularPathologyFindings    []MolecularPathologyFinding     `json:"molecularPathologyFindings,omitempty"`
	NGSReports                    []SomaticNGSReport              `json:"ngsReports,omitempty"`
	CarePlans                     []CarePlan                      `json:"carePlans,omitempty"`
	Recommendations               []TherapyRecommendation         `json:"recommendations,omitempty"`
	GeneticCounsellingRequests    []GeneticCounsellingRequest     `json:"geneticCounsellingRequests,omitempty"`
	RebiopsyRequests              []RebiopsyRequest               `json:"rebiopsyRequests,omitempty"`
	HistologyReevaluationRequests []HistologyReevaluationRequest  `json:"histologyReevaluationRequests,omitempty"`
	StudyInclusionRequests        []StudyInclusionRequest         `json:"studyInclusionRequests,omitempty"`
	Claims                        []Claim                         `json:"claims,omitempty"`
	ClaimResponses                []ClaimResponse                 `json:"claimResponses,omitempty"`
	MolecularTherapies            []MolecularTherapyDocumentation `json:"molecularTherapies,omitempty"`
	Responses                     []Response                      `json:"responses,omitempty"`
}
