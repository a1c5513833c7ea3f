package organize

import (
	"context"
	"encoding/json"
	"time"

	"github.com/handiism/audiorganizer/internal/config"
	ioutils "github.com/handiism/audiorganizer/internal/io"
)

// Status is the outcome of one file.
type Status string

const (
	// StatusOrganized means the file was copied or moved into the tree.
	StatusOrganized Status = "organized"

	// StatusPlanned means a dry run computed the destination only.
	StatusPlanned Status = "planned"

	// StatusFailed means tag reading, directory creation or the transfer
	// failed; the file was left where it was.
	StatusFailed Status = "failed"
)

// Result describes what happened to one source file.
type Result struct {
	Source      string `json:"source"`
	FileName    string `json:"file"`
	Destination string `json:"destination,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	Action      string `json:"action,omitempty"`
	Size        int64  `json:"size"`
	Status      Status `json:"status"`
	Error       string `json:"error,omitempty"`

	Err error `json:"-"`
}

// Summary aggregates the results of one run.
//
// Results are kept in processing order. The counters are derived from
// Results when the run finishes.
type Summary struct {
	SourceDir string      `json:"source_dir"`
	DestDir   string      `json:"dest_dir"`
	Mode      config.Mode `json:"mode"`
	DryRun    bool        `json:"dry_run"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Organized int   `json:"organized"`
	Planned   int   `json:"planned"`
	Failed    int   `json:"failed"`
	Bytes     int64 `json:"bytes"`

	Results []Result `json:"results"`
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
}

// finalize computes the counters and normalizes timestamps to UTC.
func (s *Summary) finalize(finished time.Time) {
	s.StartedAt = s.StartedAt.UTC()
	s.FinishedAt = finished.UTC()

	s.Organized, s.Planned, s.Failed, s.Bytes = 0, 0, 0, 0
	for _, r := range s.Results {
		switch r.Status {
		case StatusOrganized:
			s.Organized++
			s.Bytes += r.Size
		case StatusPlanned:
			s.Planned++
		case StatusFailed:
			s.Failed++
		}
	}
}

// Total is the number of audio files that were processed.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Failures returns the failed results in processing order.
func (s *Summary) Failures() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// WriteJSON writes the summary as an indented JSON report.
func (s *Summary) WriteJSON(ctx context.Context, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return ioutils.WriteFile(ctx, path, append(data, '\n'))
}
