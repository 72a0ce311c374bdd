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
	"github.com/spf13/viper"
)

var removeCmd = &cobra.Command{
	Use:   "sync-remove <workflow-id>",
	Short: "Stop monitoring a workflow for sync",
	Long: `Removes a workflow id from the monitored set. The local file, if any,
and the remote workflow are both left untouched; only sync propagation for
that id stops. Restart the sync daemon for the change to take effect.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	if directory, _ := cmd.Flags().GetString("directory"); directory != "" {
		viper.Set("workflows_dir", directory)
	}

	wid := args[0]
	if err := removeFromManifest(wid); err != nil {
		return fmt.Errorf("failed to update monitored workflow list: %w", err)
	}

	cmd.Printf("Stopped monitoring workflow %s. Restart the sync daemon to pick it up.\n", wid)
	return nil
}
