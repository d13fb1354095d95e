package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/saulo-duarte/hikma-lambda/internal/config"
)

const tracerName = "github.com/saulo-duarte/hikma-lambda/internal/gemini"

var ErrEmptyResponse = errors.New("empty response from model")

// Request is one prompt sent to the model. A non-nil Schema switches the
// call to structured JSON output.
type Request struct {
	Prompt string
	Schema *genai.Schema
}

type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type geminiProvider struct {
	client *genai.Client
	model  string
	tracer trace.Tracer
}

func NewGeminiProvider(ctx context.Context, opts Options) (Provider, error) {
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithSpanOptions(trace.WithSpanKind(trace.SpanKindClient)),
		),
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return &geminiProvider{
		client: client,
		model:  model,
		tracer: tp.Tracer(tracerName),
	}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, req Request) (_ string, err error) {
	ctx, span := p.tracer.Start(ctx, "gemini.generate", trace.WithAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", p.model),
		attribute.Bool("ai.structured", req.Schema != nil),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	log := config.WithContext(ctx).WithField("model", p.model)

	var cfg *genai.GenerateContentConfig
	if req.Schema != nil {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[GEMINI] Raw model response:\n%s", raw)
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}
