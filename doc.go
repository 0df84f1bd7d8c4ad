// Package mtbvalidator provides structural and referential validation of
// Molecular Tumor Board (MTB) case files.
//
// Given one MTB file, the checker either returns the file itself (when it
// is usable) or a DataQualityReport: a non-empty list of issues classified
// by severity and tagged with a precise location in the submitted document.
// All issues are accumulated in one pass rather than failing fast, so a
// clinician receives the entire list at once.
//
// # Quick Start
//
//	import (
//	    mv "github.com/gomtb/validator"
//	    "github.com/gomtb/validator/catalog"
//	    "github.com/gomtb/validator/engine"
//	)
//
//	catalogs, err := catalog.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	checker := engine.New(catalogs)
//	file, report := checker.Check(mtbFile)
//	if report != nil {
//	    for _, issue := range report.Issues {
//	        fmt.Println(issue)
//	    }
//	}
//
// # Severity Contract
//
// Callers interpret a report through three predicates:
//
//   - HasFatal: reject the upload
//   - HasOnlyInfos: accept
//   - otherwise: accept and store the report; forward downstream
//     only when !HasErrors()
//
// # Validation Regimes
//
// The checker branches on the patient-consent status. With consent
// Active, every record kind is validated for field presence, numeric
// ranges, catalog membership (ICD-10-GM, ICD-O-3, ATC) and referential
// integrity against indexes built from the same file. With consent
// Rejected, every presence rule over the file body inverts into an
// absence rule: any populated slot is a fatal issue.
//
// # Architecture
//
//   - Small interfaces for catalog lookups, with in-memory and cached
//     implementations (package catalog)
//   - Generic accumulating combinators (package validate)
//   - One validator per record kind, orchestrated over a shared
//     cross-reference context (package engine)
//   - A thin intake service interpreting the severity contract
//     (package intake)
//
// The checker itself is pure: it never mutates its input, never logs,
// and performs no I/O. It may be called concurrently without
// synchronization.
package mtbvalidator
