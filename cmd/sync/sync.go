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

// Package sync wires the background sync engine (github.com/edenreich/n8n-sync/sync)
// into the CLI as a set of sync-* verbs: start, stop, status, add, remove.
package sync

import (
	"fmt"
	"path/filepath"
	"time"

	rootcmd "github.com/edenreich/n8n-sync/cmd"
	"github.com/edenreich/n8n-sync/localstore"
	syncengine "github.com/edenreich/n8n-sync/sync"
	"github.com/spf13/viper"
)

// resolverForName maps the --conflict-resolution flag value to a Resolver.
// "ask" falls back to prefer-remote in non-interactive CLI use: a daemon
// has no terminal to prompt, so it defers to the conservative default and
// conflicts are resolved in favour of the remote copy.
func resolverForName(name string) (syncengine.Resolver, error) {
	switch name {
	case "", "ask":
		return syncengine.PreferRemoteResolver{}, nil
	case "local":
		return syncengine.PreferLocalResolver{}, nil
	case "remote":
		return syncengine.PreferRemoteResolver{}, nil
	case "latest":
		return syncengine.PreferNewestResolver{}, nil
	default:
		return nil, fmt.Errorf("unknown conflict resolution strategy %q (expected ask, local, remote, or latest)", name)
	}
}

// buildEngine constructs a sync engine from the currently bound
// configuration (flags, env vars, config file), matching the precedence
// rootcmd.NewClientFromConfig already establishes for authentication.
func buildEngine() (*syncengine.Engine, error) {
	client, err := rootcmd.NewClientFromConfig()
	if err != nil {
		return nil, err
	}

	dir := viper.GetString("workflows_dir")
	store, err := localstore.New(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open local workflow store at %q: %w", dir, err)
	}

	resolver, err := resolverForName(viper.GetString("conflict_resolution"))
	if err != nil {
		return nil, err
	}

	pollInterval := time.Duration(viper.GetInt("poll_interval")) * time.Second

	return syncengine.NewEngine(client, store, resolver, pollInterval), nil
}

// pidFilePath returns the PID file location for the daemon managed by
// sync-start/sync-stop, rooted alongside the monitored workflows directory
// so multiple instances watching different directories don't collide.
func pidFilePath() string {
	dir := viper.GetString("workflows_dir")
	return filepath.Join(dir, ".n8n-sync.pid")
}

func init() {
	startCmd.Flags().String("conflict-resolution", "", "Conflict resolution strategy: ask, local, remote, or latest (default from config)")
	startCmd.Flags().Int("poll-interval", 0, "Remote poll interval in seconds (default from config)")
	startCmd.Flags().StringP("directory", "d", "", "Directory containing the local workflow collection (default from config)")

	addCmd.Flags().StringP("directory", "d", "", "Directory containing the local workflow collection (default from config)")
	addCmd.Flags().Bool("by-id", false, "Treat the argument as a workflow ID instead of a name")

	removeCmd.Flags().StringP("directory", "d", "", "Directory containing the local workflow collection (default from config)")

	rootcmd.GetRootCmd().AddCommand(startCmd, stopCmd, statusCmd, addCmd, removeCmd)
}
