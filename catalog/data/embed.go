// Package data provides the embedded catalog files the in-memory
// catalog service is loaded from.
//
// Each file is a two-column CSV (code, display) with a header row:
//   - icd10gm-<year>.csv: ICD-10-GM codes of one yearly version
//   - icdo3-topography.csv, icdo3-morphology.csv: ICD-O-3 axes
//   - atc.csv: ATC medication codes
package data

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.csv
var files embed.FS

// File names of the embedded catalogs.
const (
	ICDO3Topography = "icdo3-topography.csv"
	ICDO3Morphology = "icdo3-morphology.csv"
	ATC             = "atc.csv"
)

// ICD10GM returns the file name of one yearly ICD-10-GM version.
func ICD10GM(version string) string {
	return "icd10gm-" + version + ".csv"
}

// ICD10GMVersions lists the yearly versions with embedded data.
func ICD10GMVersions() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	var versions []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "icd10gm-") && strings.HasSuffix(name, ".csv") {
			versions = append(versions, strings.TrimSuffix(strings.TrimPrefix(name, "icd10gm-"), ".csv"))
		}
	}
	return versions
}

// ReadFile reads one embedded catalog file.
func ReadFile(name string) ([]byte, error) {
	b, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog %s: %w", name, err)
	}
	return b, nil
}

// HasFile checks whether an embedded catalog file exists.
func HasFile(name string) bool {
	_, err := files.ReadFile(name)
	return err == nil
}
