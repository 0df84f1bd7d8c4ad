package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gomtb/validator/catalog/data"
)

// Load builds an in-memory catalog service from the embedded catalog
// files. Call it once at startup; the result is read-only afterwards.
func Load() (*InMemory, error) {
	s := NewInMemory()

	for _, version := range data.ICD10GMVersions() {
		v, err := ParseICD10Version(version)
		if err != nil {
			return nil, fmt.Errorf("embedded ICD-10-GM file: %w", err)
		}
		codes, err := readCodes(data.ICD10GM(version))
		if err != nil {
			return nil, err
		}
		s.AddICD10(v, codes...)
	}

	topography, err := readCodes(data.ICDO3Topography)
	if err != nil {
		return nil, err
	}
	morphology, err := readCodes(data.ICDO3Morphology)
	if err != nil {
		return nil, err
	}
	// Both ICD-O-3 revisions share the embedded axis files; the codes
	// relevant here are stable across them.
	for _, v := range []ICDO3Version{ICDO3FirstRevision, ICDO3SecondRevision} {
		s.AddTopography(v, topography...)
		s.AddMorphology(v, morphology...)
	}

	medications, err := readCodes(data.ATC)
	if err != nil {
		return nil, err
	}
	s.AddMedications(medications...)

	return s, nil
}

// readCodes parses the code column of one embedded catalog file.
func readCodes(name string) ([]string, error) {
	raw, err := data.ReadFile(name)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = 2

	// Header row
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}

	var codes []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		codes = append(codes, record[0])
	}
	return codes, nil
}
