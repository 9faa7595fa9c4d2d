// Loads orchestrator configuration from YAML, environment, and defaults.
//
// The platform matrix and step bindings are static; configuration covers
// only the project-specific externals: which commands invoke the build
// and packaging tools, where their products land, and which artifact
// store backend receives the bundles.
package config
