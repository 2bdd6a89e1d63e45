package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Bhaskers-Blu-Org2/jschema"
)

// debounceWindow coalesces the event bursts editors produce on save.
const debounceWindow = 200 * time.Millisecond

// watchLoop generates once, then regenerates whenever the schema
// document or the hints file change on disk. Runs are keyed on a
// content digest, so events that leave the inputs byte-identical are
// ignored. Errors of individual runs are reported and the loop keeps
// watching; it exits when the command context is cancelled.
func watchLoop(cmd *cobra.Command, schemaPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the parent directories instead of the files: editors that
	// save by rename-and-replace drop direct file watches.
	watched := map[string]bool{filepath.Clean(schemaPath): true}
	if hintsPath != "" {
		watched[filepath.Clean(hintsPath)] = true
	}
	dirs := map[string]bool{}
	for name := range watched {
		dirs[filepath.Dir(name)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	inputs := jschema.RunInputs{Schema: schemaPath, Hints: hintsPath}
	lastDigest := ""
	rerun := func() {
		digest, err := inputs.Digest()
		if err != nil {
			cmd.PrintErrln("jschema-gen:", err)
			return
		}
		if digest == lastDigest {
			return
		}
		cfg, err := buildConfig(schemaPath)
		if err != nil {
			cmd.PrintErrln("jschema-gen:", err)
			return
		}
		if err := run(cmd, cfg); err != nil {
			cmd.PrintErrln("jschema-gen:", err)
			return
		}
		lastDigest = digest
	}
	rerun()

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			debounce.Reset(debounceWindow)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrln("jschema-gen: watch:", err)
		case <-debounce.C:
			if pending {
				pending = false
				rerun()
			}
		}
	}
}
