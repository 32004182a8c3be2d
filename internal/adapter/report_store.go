package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "camelize.dev/pkg/camelize/internal/model"
)

// ErrReportVersion is returned when a stored report uses an unknown schema.
var ErrReportVersion = errors.New("unsupported report version")

// ReportStore persists rename reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report) error
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore keeps reports as YAML files on disk.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to path, creating parent directories.
func (s *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	if report.Version == 0 {
		report.Version = m.CurrentReportVersion
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	if report.Version != m.CurrentReportVersion {
		return m.Report{}, fmt.Errorf("%w: %d", ErrReportVersion, report.Version)
	}

	return report, nil
}
