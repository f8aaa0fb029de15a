package errors

import (
	stderrors "errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ConfigurationError means a required setting (destination address,
// credential, location) is missing. It is raised before any side effect.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(setting, message string) *ConfigurationError {
	return &ConfigurationError{
		Setting: setting,
		Message: message,
	}
}

func IsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// TransportError wraps a failed mail-transport send.
type TransportError struct {
	Channel   string
	Recipient string
	Cause     error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sending %s notification to %s: %v", e.Channel, e.Recipient, e.Cause)
	}
	return fmt.Sprintf("sending %s notification to %s failed", e.Channel, e.Recipient)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func NewTransportError(channel, recipient string, cause error) *TransportError {
	return &TransportError{
		Channel:   channel,
		Recipient: recipient,
		Cause:     cause,
	}
}

func IsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// PaymentProcessorError is a rejection (or unusable answer) from the hosted
// payment processor. StatusCode is the processor's HTTP status, 0 when none.
type PaymentProcessorError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *PaymentProcessorError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment processor: %s (status %d)", e.Message, e.StatusCode)
	}
	return "payment processor: " + e.Message
}

func NewPaymentProcessorError(statusCode int, message, body string) *PaymentProcessorError {
	return &PaymentProcessorError{
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
	}
}

func IsPaymentProcessorError(err error) (*PaymentProcessorError, bool) {
	var pe *PaymentProcessorError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
