package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/hikma-lambda/internal/config"
	"github.com/saulo-duarte/hikma-lambda/internal/container"
	"github.com/saulo-duarte/hikma-lambda/internal/router"
)

// @title                       Hikma API
// @version                     1.0
// @description                 Educational content and quizzes on values and belonging for Omani students.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		ContentHandler: c.ContentContainer.Handler,
		AIQuizHandler:  c.AIQuizContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		CorsOrigins:    c.Settings.CorsOrigins,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		config.Logger.Info("Starting Lambda handler")
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	config.Logger.Infof("Listening on %s", srv.Addr)
	err := srv.ListenAndServe()
	_ = c.ShutdownTracing(context.Background())
	config.Logger.Fatal(err)
}
