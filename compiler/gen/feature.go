package gen

import (
	"os"
	"path/filepath"
)

var (
	// FeatureComparers toggles the per-class structural equality
	// comparers. On by default; disabling it suppresses the comparer
	// artifact of every class.
	FeatureComparers = Feature{
		Name:        "comparers",
		Stage:       Stable,
		Default:     true,
		Description: "Generates a structural equality and hash comparer for every class",
		cleanup: func(c *Config) error {
			files, err := filepath.Glob(filepath.Join(c.Target, "*_comparer.go"))
			if err != nil {
				return err
			}
			for _, f := range files {
				if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
					return err
				}
			}
			return nil
		},
	}

	// FeatureVisitor toggles the graph-wide rewriting visitor. On by
	// default; disabling it suppresses the shared visitor artifact.
	FeatureVisitor = Feature{
		Name:        "visitor",
		Stage:       Stable,
		Default:     true,
		Description: "Generates a rewriting visitor that dispatches over every class in the graph",
		cleanup: func(c *Config) error {
			return remove(c.Target, "visitor.go")
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureComparers,
		FeatureVisitor,
	}

	// allFeatures includes all public and future private features.
	allFeatures = AllFeatures
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and their generated
	// output may change shape between releases.
	Experimental

	// Alpha features are complete but their configuration surface may
	// still see breaking changes.
	Alpha

	// Beta features are documented and no breaking changes are
	// expected for them.
	Beta

	// Stable features have been generating production code for a
	// while.
	Stable
)

// A Feature of the codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup removes the feature's artifacts from the target
	// directory when the feature is disabled, so a regeneration run
	// never leaves stale output from a previous configuration behind.
	cleanup func(*Config) error
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
