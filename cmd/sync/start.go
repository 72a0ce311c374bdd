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
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	syncengine "github.com/edenreich/n8n-sync/sync"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// statusSnapshotInterval is how often sync-start persists its Status() for
// sync-status to read, matching the ~2 Hz cadence spec.md §4.6 requires of
// the event consumers themselves.
const statusSnapshotInterval = 500 * time.Millisecond

var startCmd = &cobra.Command{
	Use:   "sync-start",
	Short: "Start the bidirectional workflow sync engine",
	Long: `Starts the sync engine, which watches the local workflow directory and
polls the n8n instance, propagating changes in either direction as they are
observed.

The engine runs in the foreground of this process; send SIGINT or SIGTERM
(Ctrl-C, or "n8n sync-stop") to shut it down.

Examples:

  n8n sync-start --directory workflows/ --poll-interval 15
  n8n sync-start --conflict-resolution latest`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	if directory, _ := cmd.Flags().GetString("directory"); directory != "" {
		viper.Set("workflows_dir", directory)
	}
	if strategy, _ := cmd.Flags().GetString("conflict-resolution"); strategy != "" {
		viper.Set("conflict_resolution", strategy)
	}
	if interval, _ := cmd.Flags().GetInt("poll-interval"); interval > 0 {
		viper.Set("poll_interval", interval)
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	pidPath := pidFilePath()
	if err := writePID(pidPath); err != nil {
		return err
	}
	defer func() { _ = removePID(pidPath) }()
	defer func() { _ = removeStatusSnapshot() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wids, err := loadManifest()
	if err != nil {
		return fmt.Errorf("failed to read monitored workflow list: %w", err)
	}
	for _, wid := range wids {
		if err := engine.AddWorkflow(ctx, wid, true); err != nil {
			cmd.Printf("Warning: failed to register workflow %s: %v\n", wid, err)
		}
	}

	if err := writeStatusSnapshot(engine.Status()); err != nil {
		cmd.Printf("Warning: failed to write initial status snapshot: %v\n", err)
	}

	snapshotCtx, cancelSnapshot := context.WithCancel(ctx)
	defer cancelSnapshot()
	go runStatusSnapshotLoop(snapshotCtx, engine, cmd)

	cmd.Printf("Sync engine starting (directory=%s, poll-interval=%ds, conflict-resolution=%s, monitoring=%d)\n",
		viper.GetString("workflows_dir"),
		viper.GetInt("poll_interval"),
		viper.GetString("conflict_resolution"),
		len(wids),
	)

	if err := engine.Start(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	cmd.Println("Sync engine stopped")
	return nil
}

// runStatusSnapshotLoop persists the engine's Status() on a fixed cadence
// until ctx is cancelled, so sync-status (a separate process) always has a
// recent view of per-workflow state to read.
func runStatusSnapshotLoop(ctx context.Context, engine *syncengine.Engine, cmd *cobra.Command) {
	ticker := time.NewTicker(statusSnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := writeStatusSnapshot(engine.Status()); err != nil {
				cmd.Printf("Warning: failed to write status snapshot: %v\n", err)
			}
		}
	}
}
