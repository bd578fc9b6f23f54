package response

import (
	"encoding/json"
	"net/http"
	"time"

	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Envelope wraps every pricing API response. ProcessingTimeMs is always set.
type Envelope[T any] struct {
	Success          bool    `json:"success"`
	Data             *T      `json:"data,omitempty"`
	Error            *string `json:"error,omitempty"`
	ProcessingTimeMs float64 `json:"processing_time_ms"`
	EventsProcessed  *int    `json:"events_processed,omitempty"`
}

// Option adjusts an envelope before it is written.
type Option func(*Envelope[any])

// WithEventsProcessed mirrors the processed count at the top level of the envelope.
func WithEventsProcessed(count int) Option {
	return func(e *Envelope[any]) {
		e.EventsProcessed = &count
	}
}

func elapsedMs(started time.Time) float64 {
	return float64(time.Since(started).Microseconds()) / 1000
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithSuccess sends a successful envelope timed from started.
func WithSuccess(writer http.ResponseWriter, code int, data any, started time.Time, opts ...Option) {
	envelope := Envelope[any]{
		Success:          true,
		Data:             &data,
		ProcessingTimeMs: elapsedMs(started),
	}

	for _, opt := range opts {
		opt(&envelope)
	}

	response(writer, code, envelope)
}

// WithFailure sends a failed envelope; the status code comes from the failure carried by err.
func WithFailure(writer http.ResponseWriter, err error, started time.Time) {
	errMsg := err.Error()

	response(writer, failure.GetCode(err), Envelope[any]{
		Success:          false,
		Error:            &errMsg,
		ProcessingTimeMs: elapsedMs(started),
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
