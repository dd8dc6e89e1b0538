package main

import (
	"context"
	"os"

	"github.com/RisingZenByte/tianji-api/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
