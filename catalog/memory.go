package catalog

import "sync"

// InMemory implements Service using in-memory code sets. Populate it
// with the Add methods (or catalog.Load, which fills it from the
// embedded catalog files) before handing it to a checker; reads take a
// shared read lock and may run concurrently.
type InMemory struct {
	mu          sync.RWMutex
	icd10       map[ICD10Version]Codes
	topography  map[ICDO3Version]Codes
	morphology  map[ICDO3Version]Codes
	medications Codes
}

// NewInMemory creates an empty in-memory catalog service.
func NewInMemory() *InMemory {
	return &InMemory{
		icd10:       make(map[ICD10Version]Codes),
		topography:  make(map[ICDO3Version]Codes),
		morphology:  make(map[ICDO3Version]Codes),
		medications: make(Codes),
	}
}

// AddICD10 adds codes to one ICD-10-GM catalog version.
func (s *InMemory) AddICD10(version ICD10Version, codes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.icd10[version]
	if !ok {
		set = make(Codes, len(codes))
		s.icd10[version] = set
	}
	for _, code := range codes {
		set[code] = struct{}{}
	}
}

// AddTopography adds ICD-O-3-T codes to one catalog revision.
func (s *InMemory) AddTopography(version ICDO3Version, codes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.topography[version]
	if !ok {
		set = make(Codes, len(codes))
		s.topography[version] = set
	}
	for _, code := range codes {
		set[code] = struct{}{}
	}
}

// AddMorphology adds ICD-O-3-M codes to one catalog revision.
func (s *InMemory) AddMorphology(version ICDO3Version, codes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.morphology[version]
	if !ok {
		set = make(Codes, len(codes))
		s.morphology[version] = set
	}
	for _, code := range codes {
		set[code] = struct{}{}
	}
}

// AddMedications adds ATC codes.
func (s *InMemory) AddMedications(codes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, code := range codes {
		s.medications[code] = struct{}{}
	}
}

// Versions implements ICD10Provider.
func (s *InMemory) Versions() []ICD10Version {
	s.mu.RLock()
	defer s.mu.RUnlock()
	versions := make([]ICD10Version, 0, len(s.icd10))
	for v := range s.icd10 {
		versions = append(versions, v)
	}
	return versions
}

// Codings implements ICD10Provider.
func (s *InMemory) Codings(version ICD10Version) Codes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.icd10[version]
}

// Topography implements ICDO3Provider.
func (s *InMemory) Topography(version ICDO3Version) Codes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topography[version]
}

// Morphology implements ICDO3Provider.
func (s *InMemory) Morphology(version ICDO3Version) Codes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.morphology[version]
}

// Medications implements MedicationProvider.
func (s *InMemory) Medications() Codes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.medications
}

// Verify interface compliance
var _ Service = (*InMemory)(nil)
