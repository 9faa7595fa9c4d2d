// Provides platform-appropriate paths for the orchestrator.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The application name "releasekit" is used as the
// subdirectory under each base path. Both locations can be overridden
// through configuration.
package paths
