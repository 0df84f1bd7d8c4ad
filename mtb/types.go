package mtb

// Coding is a code taken from a clinical code system, optionally with a
// display text and the code-system version it was taken from. The code
// system itself is implied by the field the coding appears in.
type Coding struct {
	Code    string  `json:"code"`
	Display *string `json:"display,omitempty"`
	Version *string `json:"version,omitempty"`
}

// Gender of a patient.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// ConsentStatus governs which data an MTB file may carry.
type ConsentStatus string

const (
	// ConsentActive permits the full case file.
	ConsentActive ConsentStatus = "active"
	// ConsentRejected locks the file body: only patient, consent, and
	// episode may be present.
	ConsentRejected ConsentStatus = "rejected"
)

// TumorCellContentMethod is the method a tumor-cell-content value was
// determined with.
type TumorCellContentMethod string

const (
	TumorCellContentHistologic    TumorCellContentMethod = "histologic"
	TumorCellContentBioinformatic TumorCellContentMethod = "bioinformatic"
)

// MolecularTherapyStatus discriminates the molecular-therapy variants.
type MolecularTherapyStatus string

const (
	TherapyNotDone   MolecularTherapyStatus = "not-done"
	TherapyOngoing   MolecularTherapyStatus = "on-going"
	TherapyStopped   MolecularTherapyStatus = "stopped"
	TherapyCompleted MolecularTherapyStatus = "completed"
)

// HasMedication returns true for the variants that carry a medication
// list. A therapy that never started has none.
func (s MolecularTherapyStatus) HasMedication() bool {
	switch s {
	case TherapyOngoing, TherapyStopped, TherapyCompleted:
		return true
	default:
		return false
	}
}
