package model

// FileResult holds the rewrite outcome for a single source file.
type FileResult struct {
	Source    Source
	Original  []byte
	Rewritten []byte
	Renames   []Rename
	Diff      string
	Err       error
}

// Changed reports whether the rewritten content differs from the original.
func (r FileResult) Changed() bool {
	return r.Err == nil && len(r.Renames) > 0
}

// Path returns the display path of the source.
func (r FileResult) Path() Path {
	if r.Source.Origin == nil {
		return ""
	}

	if r.Source.Origin.ShortPath != "" {
		return r.Source.Origin.ShortPath
	}

	return r.Source.Origin.FullPath
}

// ReportFile is the persisted summary of one rewritten file.
type ReportFile struct {
	Path    Path     `yaml:"path"`
	Hash    string   `yaml:"hash,omitempty"`
	Renames []Rename `yaml:"renames,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

// Report is the persisted summary of a rewrite run.
type Report struct {
	Version int          `yaml:"version"`
	Files   []ReportFile `yaml:"files"`
}

// CurrentReportVersion is the schema version written by this build.
const CurrentReportVersion = 1
