package response

import (
	"bookit/shared/constant"
	"bookit/shared/failure"
	"bookit/shared/logger"
	"encoding/json"
	"net/http"
)

type Data[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Message *string `json:"message,omitempty"`
	Count   *int    `json:"count,omitempty"`
}

type Error struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	Errors    []failure.FieldError `json:"errors,omitempty"`
	Available *int                 `json:"available,omitempty"`
}

type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Success: true, Data: &jsonPayload})
}

// WithJSONMessage sends data together with a message. success may be false for
// domain outcomes that are not errors, such as an unknown promo code.
func WithJSONMessage(writer http.ResponseWriter, code int, success bool, message string, jsonPayload any) {
	response(writer, code, Data[any]{Success: success, Data: &jsonPayload, Message: &message})
}

// WithList sends a list along with its length
func WithList(writer http.ResponseWriter, code int, jsonPayload any, count int) {
	response(writer, code, Data[any]{Success: true, Data: &jsonPayload, Count: &count})
}

// WithError sends a response with an error message. Internal errors are replaced by a
// generic message; the cause is logged.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	payload := Error{
		Message: err.Error(),
		Errors:  failure.GetFieldErrors(err),
	}

	if available, ok := failure.GetAvailable(err); ok {
		payload.Available = &available
	}

	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		payload.Message = constant.ResponseErrorInternal
	}

	response(writer, code, payload)
}

// WithBody sends payload as is, without the envelope
func WithBody(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithPNG writes raw PNG bytes
func WithPNG(writer http.ResponseWriter, data []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypePNG)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(data); err != nil {
		logger.ErrorWithStack(err)
	}
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

// WithNotFound sends the default response for unknown routes
func WithNotFound(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusNotFound, constant.ResponseErrorRouteNotFound)
}

// WithMethodNotAllowed sends the default response for a known route with the wrong method
func WithMethodNotAllowed(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

func response(writer http.ResponseWriter, code int, payload any) {
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
