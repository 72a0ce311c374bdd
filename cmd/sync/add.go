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

var addCmd = &cobra.Command{
	Use:   "sync-add <workflow-id-or-name>",
	Short: "Register a workflow for bidirectional sync",
	Long: `Adds a workflow to the set a running (or future) sync daemon monitors.
The argument is matched by case-insensitive substring against remote
workflow names unless --by-id is given, in which case it is used as the
workflow id directly.

Examples:

  n8n sync-add "Customer Onboarding"
  n8n sync-add --by-id abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if directory, _ := cmd.Flags().GetString("directory"); directory != "" {
		viper.Set("workflows_dir", directory)
	}
	byID, _ := cmd.Flags().GetBool("by-id")

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	identifier := args[0]
	if err := engine.AddWorkflow(cmd.Context(), identifier, byID); err != nil {
		return fmt.Errorf("failed to add workflow %q: %w", identifier, err)
	}

	status := engine.Status()
	var wid string
	for id := range status.Workflows {
		wid = id
	}

	if err := addToManifest(wid); err != nil {
		return fmt.Errorf("failed to persist monitored workflow list: %w", err)
	}

	cmd.Printf("Now monitoring workflow %q (id %s). Restart the sync daemon to pick it up.\n", identifier, wid)
	return nil
}
