package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/netlayer/endpoint"
	"github.com/kbukum/netlayer/logger"
	"github.com/kbukum/netlayer/observability"
)

const component = "httpclient"

// Executor issues requests described by endpoint descriptors.
// It holds no per-request state and is safe for concurrent use.
type Executor struct {
	cfg       Config
	transport Transport
	decoder   Decoder
	log       *logger.Logger
	metrics   *observability.Metrics
}

// Option configures an Executor.
type Option func(*Executor)

// WithTransport makes every request go through t instead of a fresh session.
func WithTransport(t Transport) Option {
	return func(e *Executor) { e.transport = t }
}

// WithDecoder replaces the default JSON decoder.
func WithDecoder(d Decoder) Option {
	return func(e *Executor) { e.decoder = d }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Executor) {
		if l == nil {
			l = logger.Nop()
		}
		e.log = l.WithComponent(component)
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Executor) { e.metrics = m }
}

// New creates an Executor. Zero-value config fields get defaults.
func New(cfg Config, opts ...Option) (*Executor, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Executor{
		cfg:     cfg,
		decoder: JSONDecoder{},
		log:     logger.Get(component),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

var (
	defaultOnce     sync.Once
	defaultExecutor *Executor
)

// Default returns a shared Executor with default configuration.
func Default() *Executor {
	defaultOnce.Do(func() {
		defaultExecutor, _ = New(Config{})
	})
	return defaultExecutor
}

// Request builds d's URL, issues the request and delivers the decoded body
// to onComplete. onComplete is called exactly once, always on a goroutine
// other than the caller's, including when the URL cannot be built.
// A nil e uses Default().
func Request[T any](ctx context.Context, e *Executor, d endpoint.Descriptor, onComplete func(Result[T])) {
	if ctx == nil {
		ctx = context.Background()
	}
	if e == nil {
		e = Default()
	}

	var once sync.Once
	deliver := func(r Result[T]) {
		once.Do(func() {
			if onComplete != nil {
				onComplete(r)
			}
		})
	}

	go func() {
		deliver(execute[T](ctx, e, d))
	}()
}

// Await issues the request and blocks until it resolves or ctx is done.
func Await[T any](ctx context.Context, e *Executor, d endpoint.Descriptor) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	done := make(chan Result[T], 1)
	Request(ctx, e, d, func(r Result[T]) { done <- r })

	select {
	case r := <-done:
		return r.Unwrap()
	case <-ctx.Done():
		var zero T
		return zero, NewTimeoutError("await", ctx.Err())
	}
}

// Get issues a GET request and waits for its decoded result.
func Get[T any](ctx context.Context, e *Executor, scheme endpoint.Scheme, host, path string, query ...endpoint.QueryParam) (T, error) {
	return Await[T](ctx, e, endpoint.Get(scheme, host, path, query...))
}

// Delete issues a DELETE request and waits for its decoded result.
func Delete[T any](ctx context.Context, e *Executor, scheme endpoint.Scheme, host, path string, query ...endpoint.QueryParam) (T, error) {
	return Await[T](ctx, e, endpoint.Delete(scheme, host, path, query...))
}

// response is what a completed exchange hands to decoding.
type response struct {
	status int
	body   []byte
}

func execute[T any](ctx context.Context, e *Executor, d endpoint.Descriptor) (res Result[T]) {
	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)

	oc := observability.NewOperationContext(e.cfg.Name, operationName(d), requestID, e.metrics)
	ctx, span := oc.StartSpanForOperation(ctx, observability.SpanHTTPRequest)
	log := e.log.WithContext(ctx)

	fail := func(err *Error) Result[T] {
		oc.EndOperation(ctx, span, err.Code.String(), err)
		return Failure[T](err)
	}

	defer func() {
		if p := recover(); p != nil {
			err := NewRequestError(fmt.Errorf("request panicked: %v", p))
			log.Error("request panicked", logger.ErrorFields("execute", err))
			res = fail(err)
		}
	}()

	u, err := endpoint.BuildURL(d)
	if err != nil {
		log.Error("url construction failed", logger.ErrorFields("build_url", err))
		return fail(NewURLConstructionError(err))
	}

	method := d.Method()
	span.SetAttributes(
		attribute.String(observability.AttrHTTPMethod, string(method)),
		attribute.String(observability.AttrURLFull, u.String()),
		attribute.String(observability.AttrServerAddress, u.Host),
	)
	log = log.WithFields(logger.Fields(logger.FieldMethod, string(method), logger.FieldURL, u.String()))

	resp, failure := e.exchange(ctx, log, span, method, u)
	if failure != nil {
		return fail(failure)
	}

	var v T
	if err := e.decode(resp.body, &v); err != nil {
		log.Warn("response decode failed", logger.Fields(
			logger.FieldStatusCode, resp.status,
			logger.FieldError, err.Error(),
			"target", typeName[T](),
		))
		return fail(NewDecodeError(typeName[T](), resp.status, resp.body, err))
	}

	oc.EndOperation(ctx, span, "ok", nil)
	log.Debug("request completed", logger.MergeWithDuration(
		logger.Fields(logger.FieldStatusCode, resp.status),
		oc.Duration(),
	))
	return Success(v)
}

// decode runs the configured decoder and rejects nil results, so a
// successful Result never holds a nil pointer, map, slice or interface.
// A panicking decoder is reported as a decode error.
func (e *Executor) decode(body []byte, v any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("decoder panicked: %v", p)
		}
	}()
	if err := e.decoder.Decode(body, v); err != nil {
		return err
	}
	if isNil(reflect.ValueOf(v).Elem()) {
		return errNullValue
	}
	return nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// exchange performs the network part of a request and reads the body.
// Failures are logged here.
func (e *Executor) exchange(ctx context.Context, log *logger.Logger, span trace.Span, method endpoint.Method, u *url.URL) (*response, *Error) {
	if !method.Valid() {
		err := fmt.Errorf("unsupported method %q", method)
		log.Error("request construction failed", logger.ErrorFields("new_request", err))
		return nil, NewRequestError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, string(method), u.String(), nil)
	if err != nil {
		log.Error("request construction failed", logger.ErrorFields("new_request", err))
		return nil, NewRequestError(err)
	}

	transport := e.transport
	if transport == nil {
		session := newSession()
		defer session.CloseIdleConnections()
		transport = session
	}

	start := time.Now()
	resp, err := transport.Do(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		failure := e.networkError(ctx, u.Host, err)
		log.Error("request failed", logger.MergeWithDuration(
			logger.Fields(logger.FieldError, err.Error(), logger.FieldErrorCode, failure.Code.String()),
			time.Since(start),
		))
		return nil, failure
	}
	if resp == nil {
		log.Warn("transport returned no response")
		return nil, NewMissingResponseError("response")
	}
	if resp.Body == nil {
		log.Warn("transport returned no body", logger.Fields(logger.FieldStatusCode, resp.StatusCode))
		return nil, NewMissingResponseError("body")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int(observability.AttrHTTPStatusCode, resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.cfg.MaxBodyBytes+1))
	if err != nil {
		failure := e.networkError(ctx, u.Host, err)
		log.Error("reading response body failed", logger.Fields(
			logger.FieldStatusCode, resp.StatusCode,
			logger.FieldError, err.Error(),
		))
		return nil, failure
	}
	if int64(len(body)) > e.cfg.MaxBodyBytes {
		err := fmt.Errorf("response body exceeds %d bytes", e.cfg.MaxBodyBytes)
		log.Error("response body too large", logger.ErrorFields("read_body", err))
		return nil, NewTransportError(u.Host, err)
	}

	span.SetAttributes(attribute.Int(observability.AttrBodySize, len(body)))
	if e.metrics != nil {
		e.metrics.RecordResponseSize(ctx, e.cfg.Name, int64(len(body)))
	}

	if e.cfg.StrictStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		log.Warn("unexpected status", logger.Fields(logger.FieldStatusCode, resp.StatusCode))
		return nil, NewStatusError(resp.StatusCode, body)
	}

	return &response{status: resp.StatusCode, body: body}, nil
}

// networkError classifies a transport failure. Deadline and cancellation of
// ctx win over whatever the transport reported.
func (e *Executor) networkError(ctx context.Context, host string, err error) *Error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewTimeoutError("request", err)
	}
	return NewTransportError(host, err)
}

func operationName(d endpoint.Descriptor) string {
	if d == nil {
		return "invalid"
	}
	return string(d.Method()) + " " + d.Host()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
