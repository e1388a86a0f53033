// Command textpipe explores and transforms folder-per-category corpora.
package main

import (
	"github.com/custodia-labs/textpipe/internal/adapters/driving/cli"
	"github.com/custodia-labs/textpipe/internal/steps"
)

func main() {
	registry := steps.NewRegistry()
	steps.RegisterDefaults(registry)
	cli.SetStepRegistry(registry)

	cli.Execute()
}
