package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/quizzai-lambda/internal/config"
	"github.com/saulo-duarte/quizzai-lambda/internal/container"
	"github.com/saulo-duarte/quizzai-lambda/internal/router"
)

// The container is built once per execution environment and reused across
// invocations.
var adapter *httpadapter.HandlerAdapter

func init() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}
	adapter = httpadapter.New(router.New(c.RouterConfig()))
}

func main() {
	lambda.Start(adapter.ProxyWithContext)
}
