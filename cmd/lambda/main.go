package main

import (
	"context"
	"log"
	"time"

	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/config"
	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/di"
	"github.com/evanhearne/ds-serverlessREST-lab/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"
)

// handler adapts API Gateway HTTP API events to the chi router
type handler struct {
	chiLambda     *chiadapter.ChiLambdaV2
	logger        *zap.Logger
	coldStart     bool
	coldStartTime time.Time
}

func newHandler(container *di.Container, coldStartTime time.Time) *handler {
	return &handler{
		chiLambda:     chiadapter.NewV2(container.LambdaRouter()),
		logger:        container.Logger,
		coldStart:     true,
		coldStartTime: coldStartTime,
	}
}

// Handle logs the raw gateway event, then serves it through the router
func (h *handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	h.logger.Info("[EVENT]",
		zap.Any("event", req),
		zap.String("request_id", req.RequestContext.RequestID),
	)

	resp, err := h.chiLambda.ProxyWithContextV2(ctx, rest.GatewayRequest(req))
	if err != nil {
		h.logger.Error("Failed to proxy request", zap.Error(err))
		return resp, err
	}

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}

	resp.Headers["X-Cold-Start"] = "false"
	if h.coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		resp.Headers["X-Cold-Start-Duration"] = time.Since(h.coldStartTime).String()
		h.coldStart = false
	}

	if req.RequestContext.RequestID != "" {
		resp.Headers["X-Request-ID"] = req.RequestContext.RequestID
	}

	h.logger.Info("Lambda response",
		zap.String("method", req.RequestContext.HTTP.Method),
		zap.String("path", req.RequestContext.HTTP.Path),
		zap.String("request_id", req.RequestContext.RequestID),
		zap.Int("status_code", resp.StatusCode),
		zap.String("stage", req.RequestContext.Stage),
	)

	if resp.StatusCode >= 500 {
		h.logger.Error("Lambda error response",
			zap.String("body", resp.Body),
			zap.Int("status_code", resp.StatusCode),
		)
	}

	return resp, nil
}

// main is the entry point for the Lambda function
func main() {
	coldStartTime := time.Now()
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Shutdown()

	h := newHandler(container, coldStartTime)

	container.Logger.Info("Lambda cold start completed",
		zap.Duration("duration", time.Since(coldStartTime)),
		zap.String("movies_table", cfg.MoviesTable),
		zap.String("cast_table", cfg.CastTable),
	)

	lambda.Start(h.Handle)
}
