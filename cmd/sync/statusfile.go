/*
Copyright © 2025 Eden Reich

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package sync

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	syncengine "github.com/edenreich/n8n-sync/sync"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// statusFilePath is where sync-start periodically snapshots the engine's
// in-memory Status() so sync-status, running in a separate process, has
// something to read: the daemon's state lives inside its own process and
// isn't otherwise reachable from a freshly invoked CLI command.
func statusFilePath() string {
	return filepath.Join(viper.GetString("workflows_dir"), ".n8n-sync-status.yaml")
}

type workflowStatusView struct {
	Wid        string     `yaml:"wid"`
	Name       string     `yaml:"name"`
	LocalHash  string     `yaml:"local_hash,omitempty"`
	RemoteHash string     `yaml:"remote_hash,omitempty"`
	Conflict   bool       `yaml:"conflict"`
	Syncing    bool       `yaml:"syncing"`
	LastSync   *time.Time `yaml:"last_sync,omitempty"`
}

type statusView struct {
	Running            bool                 `yaml:"running"`
	WorkflowsMonitored int                  `yaml:"workflows_monitored"`
	Conflicts          int                  `yaml:"conflicts"`
	Syncing            int                  `yaml:"syncing"`
	Workflows          []workflowStatusView `yaml:"workflows"`
}

func renderStatusView(status syncengine.Status) statusView {
	wids := make([]string, 0, len(status.Workflows))
	for wid := range status.Workflows {
		wids = append(wids, wid)
	}
	sort.Strings(wids)

	view := statusView{
		Running:            status.Running,
		WorkflowsMonitored: status.WorkflowsMonitored,
		Conflicts:          status.Conflicts,
		Syncing:            status.Syncing,
		Workflows:          make([]workflowStatusView, 0, len(wids)),
	}
	for _, wid := range wids {
		state := status.Workflows[wid]
		view.Workflows = append(view.Workflows, workflowStatusView{
			Wid:        state.Wid,
			Name:       state.Name,
			LocalHash:  state.LocalHash,
			RemoteHash: state.RemoteHash,
			Conflict:   state.Conflict,
			Syncing:    state.Syncing,
			LastSync:   state.LastSync,
		})
	}
	return view
}

// writeStatusSnapshot renders status as YAML and persists it so a
// subsequently invoked sync-status can read it back.
func writeStatusSnapshot(status syncengine.Status) error {
	data, err := yaml.Marshal(renderStatusView(status))
	if err != nil {
		return err
	}
	return os.WriteFile(statusFilePath(), data, 0o644)
}

// readStatusSnapshot returns the bytes of the most recent snapshot a
// running daemon has written, already YAML-rendered. A missing file (no
// snapshot has been written yet, or no daemon has ever run) is reported as
// (nil, nil) rather than an error.
func readStatusSnapshot() ([]byte, error) {
	data, err := os.ReadFile(statusFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// removeStatusSnapshot deletes the snapshot file on daemon shutdown so a
// stale status doesn't outlive the process that produced it.
func removeStatusSnapshot() error {
	err := os.Remove(statusFilePath())
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
