package cli

import (
	"fmt"

	"github.com/jyn514/releasekit/internal"
)

// Shows version information.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run() error {
	fmt.Println(internal.VersionString())
	return nil
}
