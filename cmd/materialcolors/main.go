package main

import (
	"context"

	"github.com/go-shiori/materialcolors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	// Prepare cmd
	cmd := &cobra.Command{
		Use:   "materialcolors",
		Short: "Generate Android color resources from the Material Design color palette",
		Args:  cobra.NoArgs,
		RunE:  cmdHandler,
	}

	// Execute
	err := cmd.Execute()
	if err != nil {
		logrus.Fatalln(err)
	}
}

func cmdHandler(cmd *cobra.Command, args []string) error {
	gen := materialcolors.Generator{
		EnableLog: true,
		Stdout:    cmd.OutOrStdout(),
	}
	gen.Validate()

	return gen.Generate(context.Background())
}
