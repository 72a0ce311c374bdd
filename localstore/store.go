// Package localstore manages the on-disk workflow collection: one JSON
// file per workflow in a single directory, named and addressed by the
// conventions in CanonicalFilename/ExtractWid.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/edenreich/n8n-sync/n8n"
	"go.uber.org/zap"
)

// widSuffix matches the trailing "_<alnum>.json" segment that carries a
// workflow's remote id in its filename.
var widSuffix = regexp.MustCompile(`_([a-zA-Z0-9]+)\.json$`)

// nonWordExceptHyphenSpace strips everything from a workflow name except
// letters, digits, underscore, hyphen, and whitespace.
var nonWordExceptHyphenSpace = regexp.MustCompile(`[^\w\s-]`)

var collapsibleWhitespace = regexp.MustCompile(`\s+`)

// Record is a single on-disk workflow as returned by List.
type Record struct {
	Path     string
	Filename string
	Wid      string
	Name     string
	Active   bool
	Body     n8n.Workflow
	ModTime  time.Time
}

// Store is the local half of the sync engine's two endpoints.
type Store struct {
	dir     string
	encoder *n8n.WorkflowEncoder
	decoder *n8n.WorkflowDecoder
	logger  *zap.SugaredLogger
}

// New creates a Store rooted at dir, creating the directory if it does
// not already exist.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workflows directory %q: %w", dir, err)
	}

	zapLogger, _ := zap.NewProduction()

	return &Store{
		dir:     dir,
		encoder: n8n.NewWorkflowEncoder(false),
		decoder: n8n.NewWorkflowDecoder(),
		logger:  zapLogger.Sugar().Named("localstore"),
	}, nil
}

// Dir returns the workflows directory this store manages.
func (s *Store) Dir() string {
	return s.dir
}

// List reads every *.json file in the directory. A per-file read error is
// logged and the file skipped rather than failing the whole listing.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflows directory %q: %w", s.dir, err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		workflow, err := s.Read(entry.Name())
		if err != nil {
			s.logger.Warnw("skipping unreadable workflow file", "filename", entry.Name(), "error", err)
			continue
		}
		if workflow == nil {
			continue
		}

		wid, _ := s.ExtractWid(entry.Name())
		active := workflow.Active != nil && *workflow.Active

		var modTime time.Time
		if info, err := entry.Info(); err == nil {
			modTime = info.ModTime()
		}

		records = append(records, Record{
			Path:     filepath.Join(s.dir, entry.Name()),
			Filename: entry.Name(),
			Wid:      wid,
			Name:     workflow.Name,
			Active:   active,
			Body:     *workflow,
			ModTime:  modTime,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Filename < records[j].Filename })

	return records, nil
}

// Read loads a single workflow by filename. A missing file returns
// (nil, nil) rather than an error.
func (s *Store) Read(filename string) (*n8n.Workflow, error) {
	path := filepath.Join(s.dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workflow file %q: %w", path, err)
	}

	workflow, err := s.decoder.DecodeFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode workflow file %q: %w", path, err)
	}

	return &workflow, nil
}

// Write persists body to disk, using the canonical filename for
// (body.Name, wid) when filename is empty. It returns the path written.
func (s *Store) Write(body n8n.Workflow, filename string) (string, error) {
	if filename == "" {
		wid := ""
		if body.Id != nil {
			wid = *body.Id
		}
		filename = s.CanonicalFilename(body.Name, wid)
	}

	path := filepath.Join(s.dir, filename)

	data, err := s.encoder.EncodeToJSON(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode workflow for %q: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write workflow file %q: %w", path, err)
	}

	return path, nil
}

// ExtractWid returns the remote id embedded in filename, matching the
// trailing "_<alnum>.json" segment. A filename with no such segment has
// no remote counterpart yet.
func (s *Store) ExtractWid(filename string) (string, bool) {
	match := widSuffix.FindStringSubmatch(filename)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// CanonicalFilename builds the unique filename for a workflow identified
// by (name, wid): non-word characters (other than hyphen and whitespace)
// are dropped, runs of whitespace collapse to a single underscore.
func (s *Store) CanonicalFilename(name string, wid string) string {
	safe := nonWordExceptHyphenSpace.ReplaceAllString(name, "")
	safe = strings.TrimSpace(safe)
	safe = collapsibleWhitespace.ReplaceAllString(safe, " ")
	safe = strings.ReplaceAll(safe, " ", "_")

	if safe == "" {
		safe = "workflow"
	}

	return fmt.Sprintf("%s_%s.json", safe, wid)
}
