package httpapi

import (
	"net/http"
	"reflect"
)

// HandlerRegistration stores metadata about a registered handler for
// OpenAPI generation.
type HandlerRegistration struct {
	Method       string
	Path         string
	RequestType  reflect.Type
	ResponseType reflect.Type
	Metadata     OperationMetadata
}

// TypedRouter registers typed handlers on an http.ServeMux using
// method-qualified patterns and records each registration.
type TypedRouter struct {
	handlers []HandlerRegistration
	mux      *http.ServeMux
}

// NewRouter creates a new typed router.
func NewRouter() *TypedRouter {
	return &TypedRouter{
		handlers: make([]HandlerRegistration, 0),
		mux:      http.NewServeMux(),
	}
}

// ServeHTTP implements http.Handler.
func (r *TypedRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handlers returns all registered handlers.
func (r *TypedRouter) Handlers() []HandlerRegistration {
	return r.handlers
}

func (r *TypedRouter) registerHandler(
	method, path string,
	httpHandler http.Handler,
	requestType, responseType reflect.Type,
	metadata OperationMetadata,
) {
	r.handlers = append(r.handlers, HandlerRegistration{
		Method:       method,
		Path:         path,
		RequestType:  requestType,
		ResponseType: responseType,
		Metadata:     metadata,
	})

	r.mux.Handle(method+" "+path, httpHandler)
}

// RegisterHandler registers a typed handler with the specified method and path.
func RegisterHandler[TReq, TResp any](
	router *TypedRouter,
	method, path string,
	handler Handler[TReq, TResp],
	opts ...HandlerOption,
) {
	httpHandler := NewHTTPHandler(handler, opts...)

	router.registerHandler(
		method,
		path,
		httpHandler,
		reflect.TypeOf((*TReq)(nil)).Elem(),
		reflect.TypeOf((*TResp)(nil)).Elem(),
		httpHandler.metadata,
	)
}

// Convenience functions for common HTTP verbs.

func GET[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodGet, path, handler, opts...)
}

func POST[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodPost, path, handler, opts...)
}

func PUT[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodPut, path, handler, opts...)
}

func DELETE[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodDelete, path, handler, opts...)
}
