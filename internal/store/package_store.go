package store

import (
	"errors"
	"fmt"

	"ftracker/internal/domain"
)

var (
	// ErrEmptyCode is returned when a package in a file has no code.
	ErrEmptyCode = errors.New("package has no code")
	// ErrNoPackages is returned when a file holds null instead of an array.
	ErrNoPackages = errors.New("file holds no package array")
)

// ReferencePackages returns the readings the tracker processes by default.
func ReferencePackages() []domain.Package {
	return []domain.Package{
		{Code: domain.CodeSwimming, Values: []float64{720, 1, 80, 25, 40}},
		{Code: domain.CodeRunning, Values: []float64{15000, 1, 75}},
		{Code: domain.CodeWalking, Values: []float64{9000, 1, 75, 180}},
	}
}

// PackageFileStore reads packages from a JSON file.
type PackageFileStore struct {
	path string
}

// NewPackageFileStore returns a store backed by the file at path.
func NewPackageFileStore(path string) *PackageFileStore {
	return &PackageFileStore{path: path}
}

// Path returns the backing file path.
func (s *PackageFileStore) Path() string { return s.path }

// LoadPackages reads every package from the file, preserving order.
// Codes and value counts are not checked here; that is the reader's job.
func (s *PackageFileStore) LoadPackages() ([]domain.Package, error) {
	var packages []domain.Package
	if err := readJSON(s.path, &packages); err != nil {
		return nil, err
	}
	if packages == nil {
		return nil, fmt.Errorf("%s: %w", s.path, ErrNoPackages)
	}
	for i, p := range packages {
		if p.Code == "" {
			return nil, fmt.Errorf("%s: package %d: %w", s.path, i, ErrEmptyCode)
		}
	}
	return packages, nil
}
