package weather

import (
	"fmt"
	"net/http"
)

type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeUnauthorized
	OutcomeNotFound
	OutcomeUnexpectedStatus
	OutcomeInvalidResponse
	OutcomeConnectionFailed
	OutcomeTimeout
	OutcomeRequestFailed
)

const (
	MessageInvalidAPIKey   = "Invalid API Key"
	MessageCityNotFound    = "City not found"
	MessageUnexpectedError = "Unexpected error"
	MessageInvalidResponse = "Invalid response body"
	MessageNoConnection    = "No internet Connection"
	MessageTimeout         = "Request timed out. Try again"
	MessageRequestFailed   = "Request failed"
)

var outcomeKindNames = map[OutcomeKind]string{
	OutcomeOK:               "ok",
	OutcomeUnauthorized:     "unauthorized",
	OutcomeNotFound:         "not_found",
	OutcomeUnexpectedStatus: "unexpected_status",
	OutcomeInvalidResponse:  "invalid_response",
	OutcomeConnectionFailed: "connection_failed",
	OutcomeTimeout:          "timeout",
	OutcomeRequestFailed:    "request_failed",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// Outcome classifies a single fetch. StatusCode is zero when no HTTP
// response was received.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Err        error
}

// StatusOutcome classifies a provider HTTP status.
func StatusOutcome(code int) Outcome {
	switch code {
	case http.StatusOK:
		return Outcome{Kind: OutcomeOK, StatusCode: code}
	case http.StatusUnauthorized:
		return Outcome{Kind: OutcomeUnauthorized, StatusCode: code}
	case http.StatusNotFound:
		return Outcome{Kind: OutcomeNotFound, StatusCode: code}
	default:
		return Outcome{Kind: OutcomeUnexpectedStatus, StatusCode: code}
	}
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// Message is the human readable reason, empty on success.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeUnauthorized:
		return MessageInvalidAPIKey
	case OutcomeNotFound:
		return MessageCityNotFound
	case OutcomeUnexpectedStatus:
		return MessageUnexpectedError
	case OutcomeInvalidResponse:
		return MessageInvalidResponse
	case OutcomeConnectionFailed:
		return MessageNoConnection
	case OutcomeTimeout:
		return MessageTimeout
	case OutcomeRequestFailed:
		return MessageRequestFailed
	default:
		return ""
	}
}

// Result renders the outcome as the mapping callers print or serve.
// Provider outcomes carry the numeric status, transport outcomes carry
// their message in the status field.
func (o Outcome) Result() Result {
	switch o.Kind {
	case OutcomeOK:
		return Result{"status": o.StatusCode}
	case OutcomeUnauthorized, OutcomeNotFound, OutcomeUnexpectedStatus, OutcomeInvalidResponse:
		return Result{"status": o.StatusCode, "message": o.Message()}
	case OutcomeConnectionFailed, OutcomeTimeout:
		return Result{"status": o.Message()}
	default:
		message := MessageUnexpectedError
		if o.Err != nil {
			message = o.Err.Error()
		}
		return Result{"status": o.Message(), "message": message}
	}
}

func (o Outcome) String() string {
	if o.StatusCode != 0 {
		return fmt.Sprintf("%s (%d)", o.Kind, o.StatusCode)
	}
	return o.Kind.String()
}
