package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/jyn514/releasekit/internal/paths"
)

// Environment variable naming the config file when --config is not given.
const envConfigFile = "RELEASEKIT_CONFIG"

// Typed view of the orchestrator configuration.
//
// Everything has a default except the external tool commands and the
// static assets directory, which are project-specific.
type Config struct {
	ReleaseBranch string  // Branch designated to trigger releases.
	Workspaces    string  // Root directory for per-job workspaces.
	Build         Build   // Native build tool settings.
	Strip         Strip   // Symbol strip tool settings.
	Package       Package // Packaging tool settings.
	Store         Store   // Artifact store settings.
}

// Settings for the external build tool.
type Build struct {
	Command []string // Build tool argv.
	Dir     string   // Project root the tool runs in.
	Binary  string   // Base name of the produced binary.
}

// Settings for the external strip tool.
type Strip struct {
	Command string // Strip tool name.
}

// Settings for the external packaging tool.
type Package struct {
	Command []string // Packaging tool argv.
	Dir     string   // Directory the tool runs in.
	Output  string   // Directory the tool writes packages to, relative to Dir.
	Pattern string   // Extension identifying package files.
	Assets  string   // Static integration assets directory.
}

// Settings for the artifact store backend.
type Store struct {
	Backend string // "dir" or "s3".
	Dir     string // Destination for the dir backend.
	S3      S3     // Connection settings for the s3 backend.
}

// Connection settings for an S3-compatible object store.
type S3 struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Secure    bool
}

// Loads configuration from an optional YAML file, environment variables,
// and defaults.
//
// Environment variables use the RELEASEKIT_ prefix with dots replaced by
// underscores (e.g., RELEASEKIT_RELEASE_BRANCH). When path is empty, the
// file named by RELEASEKIT_CONFIG is read if set; otherwise only
// environment and defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("RELEASEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path == "" {
		path = os.Getenv(envConfigFile)
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		defer f.Close()

		if err := v.ReadConfig(f); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	return &Config{
		ReleaseBranch: v.GetString("release.branch"),
		Workspaces:    v.GetString("workspaces"),
		Build: Build{
			Command: v.GetStringSlice("build.command"),
			Dir:     v.GetString("build.dir"),
			Binary:  v.GetString("build.binary"),
		},
		Strip: Strip{
			Command: v.GetString("strip.command"),
		},
		Package: Package{
			Command: v.GetStringSlice("package.command"),
			Dir:     v.GetString("package.dir"),
			Output:  v.GetString("package.output"),
			Pattern: v.GetString("package.pattern"),
			Assets:  v.GetString("package.assets"),
		},
		Store: Store{
			Backend: v.GetString("store.backend"),
			Dir:     v.GetString("store.dir"),
			S3: S3{
				Endpoint:  v.GetString("store.s3.endpoint"),
				Bucket:    v.GetString("store.s3.bucket"),
				AccessKey: v.GetString("store.s3.access-key"),
				SecretKey: v.GetString("store.s3.secret-key"),
				Secure:    v.GetBool("store.s3.secure"),
			},
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("release.branch", "release")
	v.SetDefault("workspaces", paths.Workspaces())
	v.SetDefault("build.dir", ".")
	v.SetDefault("build.binary", "server")
	v.SetDefault("strip.command", "strip")
	v.SetDefault("package.dir", ".")
	v.SetDefault("package.pattern", ".vsix")
	v.SetDefault("store.backend", "dir")
	v.SetDefault("store.dir", paths.Dist())
}

// Checks that the project-specific settings were provided.
func (c *Config) Validate() error {
	switch {
	case len(c.Build.Command) == 0:
		return fmt.Errorf("build.command is required")
	case len(c.Package.Command) == 0:
		return fmt.Errorf("package.command is required")
	case c.Package.Assets == "":
		return fmt.Errorf("package.assets is required")
	}

	if c.Store.Backend == "s3" {
		switch {
		case c.Store.S3.Endpoint == "":
			return fmt.Errorf("store.s3.endpoint is required")
		case c.Store.S3.Bucket == "":
			return fmt.Errorf("store.s3.bucket is required")
		}
	}

	return nil
}
