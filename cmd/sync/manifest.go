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
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// manifestPath is the list of workflow ids a sync-start invocation should
// register at startup. sync-add/sync-remove edit it directly; sync-start
// reads it once when the daemon boots, since the daemon and the CLI verbs
// that edit the monitored set run as separate processes with no shared
// memory.
func manifestPath() string {
	return filepath.Join(viper.GetString("workflows_dir"), ".n8n-sync-manifest.json")
}

func loadManifest() ([]string, error) {
	data, err := os.ReadFile(manifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var wids []string
	if err := json.Unmarshal(data, &wids); err != nil {
		return nil, err
	}
	return wids, nil
}

func saveManifest(wids []string) error {
	data, err := json.MarshalIndent(wids, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(manifestPath(), data, 0o644)
}

func addToManifest(wid string) error {
	wids, err := loadManifest()
	if err != nil {
		return err
	}

	for _, existing := range wids {
		if existing == wid {
			return nil
		}
	}

	return saveManifest(append(wids, wid))
}

func removeFromManifest(wid string) error {
	wids, err := loadManifest()
	if err != nil {
		return err
	}

	filtered := wids[:0]
	for _, existing := range wids {
		if existing != wid {
			filtered = append(filtered, existing)
		}
	}

	return saveManifest(filtered)
}
