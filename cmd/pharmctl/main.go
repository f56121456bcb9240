package main

import (
	"context"
	"os"

	"github.com/pharmanet/pharmacy-console/internal/cli"
	"github.com/pharmanet/pharmacy-console/pkg/cmd"
)

func main() {
	ctx := context.Background()
	logger := cmd.InitLogger()
	defer cmd.HandleAppPanic(ctx, logger)

	root, err := cli.NewRootCommand(ctx, logger)
	if err != nil {
		panic(err)
	}

	if err = root.ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error(ctx, "command failed")
		os.Exit(1)
	}
}
