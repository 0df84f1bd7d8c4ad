package engine

import (
	"time"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/catalog"
	"github.com/gomtb/validator/mtb"
)

// fixedNow anchors the date-of-death check in tests.
var fixedNow = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return fixedNow }

// testCatalogs builds a small fake catalog service covering every code
// the fixtures use.
func testCatalogs() *catalog.InMemory {
	s := catalog.NewInMemory()
	s.AddICD10("2019", "C25.0", "C25.1", "C61")
	s.AddICD10("2020", "C25.0", "U07.1")
	s.AddTopography(catalog.ICDO3FirstRevision, "C25.0", "C34.1")
	s.AddMorphology(catalog.ICDO3FirstRevision, "8140/3", "8070/3")
	s.AddTopography(catalog.ICDO3SecondRevision, "C25.0")
	s.AddMorphology(catalog.ICDO3SecondRevision, "8140/3")
	s.AddMedications("L01BC02", "L01XA01", "L01XE03")
	return s
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func datePtr(year int, month time.Month, day int) *mtb.Date {
	d := mtb.NewDate(year, month, day)
	return &d
}

func coding(code, version string) *mtb.Coding {
	return &mtb.Coding{Code: code, Version: strPtr(version)}
}

// validFile builds a fully populated case file that passes every check.
func validFile() *mtb.File {
	return &mtb.File{
		Patient: &mtb.Patient{
			ID:          "P1",
			Gender:      mtb.GenderFemale,
			BirthDate:   datePtr(1970, time.January, 1),
			Insurance:   strPtr("AOK-123456"),
			DateOfDeath: datePtr(2023, time.November, 20),
		},
		Consent: &mtb.Consent{ID: "C1", Patient: "P1", Status: mtb.ConsentActive},
		Episode: &mtb.Episode{
			ID:      "E1",
			Patient: "P1",
			Period:  mtb.Period{Start: datePtr(2023, time.January, 10)},
		},
		Diagnoses: []mtb.Diagnosis{{
			ID:               "D1",
			Patient:          "P1",
			RecordedOn:       datePtr(2023, time.January, 12),
			ICD10:            coding("C25.0", "2019"),
			ICDO3T:           coding("C25.0", "2014"),
			HistologyResults: []string{"H1"},
		}},
		PreviousGuidelineTherapies: []mtb.PreviousGuidelineTherapy{{
			ID:          "PGT1",
			Patient:     "P1",
			Diagnosis:   "D1",
			TherapyLine: intPtr(2),
			Medication:  []mtb.Coding{{Code: "L01XA01"}},
		}},
		LastGuidelineTherapy: &mtb.LastGuidelineTherapy{
			ID:            "LGT1",
			Patient:       "P1",
			Diagnosis:     "D1",
			TherapyLine:   intPtr(3),
			Medication:    []mtb.Coding{{Code: "L01BC02"}},
			Period:        mtb.Period{Start: datePtr(2023, time.February, 1)},
			ReasonStopped: &mtb.Coding{Code: "progression"},
		},
		ECOGStatus: []mtb.ECOGStatus{{
			ID:            "EC1",
			Patient:       "P1",
			EffectiveDate: datePtr(2023, time.January, 12),
			Value:         &mtb.Coding{Code: "1"},
		}},
		Specimens: []mtb.Specimen{{
			ID:      "SP1",
			Patient: "P1",
			ICD10:   coding("C25.0", "2019"),
			Type:    strPtr("fresh-tissue"),
			Collection: &mtb.SpecimenCollection{
				Date:         datePtr(2023, time.January, 15),
				Localization: strPtr("primary-tumor"),
				Method:       strPtr("biopsy"),
			},
		}},
		HistologyReports: []mtb.HistologyReport{{
			ID:       "H1",
			Patient:  "P1",
			Specimen: "SP1",
			IssuedOn: datePtr(2023, time.January, 20),
			TumorMorphology: &mtb.TumorMorphology{
				ID:       "TM1",
				Patient:  "P1",
				Specimen: "SP1",
				Value:    coding("8140/3", "2014"),
			},
			TumorCellContent: &mtb.TumorCellContent{
				ID:       "TCC1",
				Specimen: "SP1",
				Method:   mtb.TumorCellContentHistologic,
				Value:    0.6,
			},
		}},
		MolecularPathologyFindings: []mtb.MolecularPathologyFinding{{
			ID:       "MPF1",
			Patient:  "P1",
			Specimen: "SP1",
			IssuedOn: datePtr(2023, time.January, 25),
			Note:     strPtr("KRAS G12D detected"),
		}},
		NGSReports: []mtb.SomaticNGSReport{{
			ID:       "NGS1",
			Patient:  "P1",
			Specimen: "SP1",
			IssuedOn: datePtr(2023, time.February, 5),
			TumorCellContent: &mtb.TumorCellContent{
				ID:       "TCC2",
				Specimen: "SP1",
				Method:   mtb.TumorCellContentBioinformatic,
				Value:    0.7,
			},
			BRCAness: floatPtr(0.4),
			MSI:      floatPtr(1.2),
			TMB:      &mtb.TMB{Value: 12.5},
		}},
		CarePlans: []mtb.CarePlan{{
			ID:                        "CP1",
			Patient:                   "P1",
			Diagnosis:                 "D1",
			IssuedOn:                  datePtr(2023, time.February, 20),
			Description:               strPtr("Targeted therapy recommended"),
			Recommendations:           []string{"TR1"},
			GeneticCounsellingRequest: strPtr("GCR1"),
			RebiopsyRequests:          []string{"RB1"},
		}},
		Recommendations: []mtb.TherapyRecommendation{{
			ID:         "TR1",
			Patient:    "P1",
			Diagnosis:  "D1",
			IssuedOn:   datePtr(2023, time.February, 20),
			Medication: []mtb.Coding{{Code: "L01XE03"}},
			Priority:   intPtr(1),
			LevelOfEvidence: &mtb.LevelOfEvidence{
				Grading: &mtb.Coding{Code: "m1A"},
			},
		}},
		GeneticCounsellingRequests: []mtb.GeneticCounsellingRequest{{
			ID:       "GCR1",
			Patient:  "P1",
			IssuedOn: datePtr(2023, time.February, 20),
			Reason:   strPtr("family history"),
		}},
		RebiopsyRequests: []mtb.RebiopsyRequest{{
			ID:       "RB1",
			Patient:  "P1",
			Specimen: "SP1",
			IssuedOn: datePtr(2023, time.February, 20),
		}},
		HistologyReevaluationRequests: []mtb.HistologyReevaluationRequest{{
			ID:       "HRR1",
			Patient:  "P1",
			Specimen: "SP1",
			IssuedOn: datePtr(2023, time.February, 21),
		}},
		StudyInclusionRequests: []mtb.StudyInclusionRequest{{
			ID:        "SIR1",
			Patient:   "P1",
			Diagnosis: "D1",
			NCTNumber: "NCT01234567",
			IssuedOn:  datePtr(2023, time.February, 22),
		}},
		Claims: []mtb.Claim{{ID: "CL1", Patient: "P1", Therapy: "TR1"}},
		ClaimResponses: []mtb.ClaimResponse{{
			ID:      "CR1",
			Patient: "P1",
			Claim:   "CL1",
			Status:  strPtr("accepted"),
			Reason:  &mtb.Coding{Code: "approved"},
		}},
		MolecularTherapies: []mtb.MolecularTherapyDocumentation{{
			History: []mtb.MolecularTherapy{{
				ID:         "MT1",
				Patient:    "P1",
				Status:     mtb.TherapyOngoing,
				RecordedOn: datePtr(2023, time.March, 1),
				BasedOn:    "TR1",
				Period:     &mtb.Period{Start: datePtr(2023, time.March, 1)},
				Medication: []mtb.Coding{{Code: "L01XE03"}},
			}},
		}},
		Responses: []mtb.Response{{
			ID:            "RE1",
			Patient:       "P1",
			Therapy:       "LGT1",
			EffectiveDate: datePtr(2023, time.April, 10),
			Value:         &mtb.Coding{Code: "PR"},
		}},
	}
}

// newTestChecker builds a checker over the fake catalogs with a fixed
// clock.
func newTestChecker() *Checker {
	return New(testCatalogs(), mv.WithClock(testClock))
}
