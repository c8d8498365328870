package httpapi

import (
	"context"
	"net/http"
)

// Handler represents the core business logic interface (transport-agnostic).
type Handler[TRequest, TResponse any] interface {
	Handle(ctx context.Context, req TRequest) (TResponse, error)
}

// RequestDecoder handles decoding HTTP requests into typed request objects.
type RequestDecoder[T any] interface {
	Decode(r *http.Request) (T, error)
}

// ResponseEncoder handles encoding typed response objects into HTTP responses.
type ResponseEncoder[T any] interface {
	Encode(w http.ResponseWriter, data T, statusCode int) error
	ContentType() string
}

// Middleware represents HTTP middleware following the standard Go pattern.
type Middleware func(http.Handler) http.Handler

// HandlerOption allows configuration of HTTP handlers during registration.
type HandlerOption func(*HandlerConfig)

// HandlerConfig contains all configuration options for a typed handler.
type HandlerConfig struct {
	Decoder     interface{} // RequestDecoder[T]
	Encoder     interface{} // ResponseEncoder[T]
	ErrorMapper ErrorMapper
	Middleware  []Middleware
	Metadata    OperationMetadata
}

// OperationMetadata documents a registered operation for OpenAPI generation.
type OperationMetadata struct {
	Summary     string
	Description string
	Tags        []string
}

// HTTPHandler wraps a typed handler with HTTP decode/encode plumbing.
type HTTPHandler[TRequest, TResponse any] struct {
	handler     Handler[TRequest, TResponse]
	decoder     RequestDecoder[TRequest]
	encoder     ResponseEncoder[TResponse]
	errorMapper ErrorMapper
	middleware  []Middleware
	metadata    OperationMetadata
}

// NewHTTPHandler creates a new HTTP handler wrapper around a typed handler.
func NewHTTPHandler[TRequest, TResponse any](
	handler Handler[TRequest, TResponse],
	opts ...HandlerOption,
) *HTTPHandler[TRequest, TResponse] {
	config := &HandlerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	h := &HTTPHandler[TRequest, TResponse]{
		handler:  handler,
		metadata: config.Metadata,
	}

	if decoder, ok := config.Decoder.(RequestDecoder[TRequest]); ok {
		h.decoder = decoder
	} else {
		h.decoder = decoderFor[TRequest](getGlobalValidator())
	}

	if encoder, ok := config.Encoder.(ResponseEncoder[TResponse]); ok {
		h.encoder = encoder
	} else {
		h.encoder = NewJSONEncoder[TResponse]()
	}

	if config.ErrorMapper != nil {
		h.errorMapper = config.ErrorMapper
	} else {
		h.errorMapper = &DefaultErrorMapper{}
	}

	h.middleware = config.Middleware

	return h
}

// ServeHTTP implements http.Handler for the typed handler.
func (h *HTTPHandler[TRequest, TResponse]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := h.decoder.Decode(r)
		if err != nil {
			h.handleError(w, err)

			return
		}

		resp, err := h.handler.Handle(r.Context(), req)
		if err != nil {
			h.handleError(w, err)

			return
		}

		statusCode := http.StatusOK
		if r.Method == http.MethodPost {
			statusCode = http.StatusCreated
		}

		if err := h.encoder.Encode(w, resp, statusCode); err != nil {
			h.handleError(w, err)
		}
	})

	var final http.Handler = inner
	for i := len(h.middleware) - 1; i >= 0; i-- {
		final = h.middleware[i](final)
	}

	final.ServeHTTP(w, r)
}

// handleError writes the mapped error response.
func (h *HTTPHandler[TRequest, TResponse]) handleError(w http.ResponseWriter, err error) {
	statusCode, response := h.errorMapper.MapError(err)

	encoder := NewJSONEncoder[interface{}]()
	if encodeErr := encoder.Encode(w, response, statusCode); encodeErr != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
