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
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "sync-status",
	Short: "Show the state of every monitored workflow",
	Long: `Reports whether a sync daemon is running and, for each workflow it
monitors, the current local/remote hashes, conflict flag, and last sync
time, rendered as YAML.

The daemon's in-memory state lives inside its own process, unreachable from
a freshly invoked CLI command, so sync-start periodically snapshots its
Status() to a file next to the monitored workflow manifest; sync-status
reads that snapshot back. A daemon that has just started may not have
written one yet.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	pidPath := pidFilePath()
	pid, alive := readLivePID(pidPath)

	if !alive {
		cmd.Println("Sync daemon: not running")
		return nil
	}

	cmd.Printf("Sync daemon: running (pid %d)\n", pid)

	data, err := readStatusSnapshot()
	if err != nil {
		return fmt.Errorf("failed to read status snapshot: %w", err)
	}
	if data == nil {
		cmd.Println("No status snapshot yet; the daemon hasn't completed its first reporting cycle.")
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
