package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/store"
	"gopkg.in/yaml.v3"
)

// seedFile is the shape of a sample data file.
type seedFile struct {
	Applicants []seedApplicant `yaml:"applicants"`
}

type seedApplicant struct {
	Name              string   `yaml:"name"`
	Phone             string   `yaml:"phone"`
	Email             string   `yaml:"email"`
	Scholarship       string   `yaml:"scholarship"`
	ApplicationStatus string   `yaml:"application_status"`
	Majors            []string `yaml:"majors"`
	Pinned            bool     `yaml:"pinned"`
}

// LoadSeed reads sample applicants from the YAML file at path. Every entry
// goes through the domain constructors and Registry.Add, so a seed file is
// held to the same rules as the data file.
func LoadSeed(path string) (*store.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (*store.Registry, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	r := store.NewRegistry()
	for i, s := range seed.Applicants {
		a, err := domain.NewApplicantFromFields(domain.ApplicantFields{
			Name:              s.Name,
			Phone:             s.Phone,
			Email:             s.Email,
			Scholarship:       s.Scholarship,
			ApplicationStatus: s.ApplicationStatus,
			Majors:            s.Majors,
		})
		if err != nil {
			return nil, fmt.Errorf("seed applicant %d: %w", i+1, err)
		}
		if err := r.Add(a.WithPinned(s.Pinned)); err != nil {
			return nil, fmt.Errorf("seed applicant %d: %w", i+1, err)
		}
	}
	return r, nil
}
