package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/digital-prison-cli/internal/domain"
)

const (
	msgSaveSucceeded   = "✅ Data sync complete. Session saved to local storage."
	msgSaveFailed      = "❌ Save failed: check the server connection."
	msgSaveWriteFailed = "❌ Save failed: could not write local storage."
	msgLoadNothing     = "⚠️ Load failed: no saved session found."
	msgLoadCorrupt     = "❌ Load failed: the local save is unreadable."
	msgLoadFailed      = "❌ Load failed: check the server connection."
)

func initFailureEntry(err error, serverLabel string) domain.LogEntry {
	var detail string
	kind, _ := domain.KindOf(err)
	switch kind {
	case domain.ErrorKindTimeout:
		detail = "The server is responding too slowly. It may still be waking up (this can take about 60 seconds)"
	case domain.ErrorKindServer:
		detail = "Server failure: " + serverSummary(err)
	case domain.ErrorKindMalformedResponse:
		detail = "Invalid response format from server"
	default:
		detail = "Connection failed: " + causeText(err)
	}

	return domain.SystemEntry(domain.EntryTypeError, fmt.Sprintf("FATAL: %s. [DEBUG: %s]", detail, serverLabel))
}

func actFailureEntry(err error) domain.LogEntry {
	kind, _ := domain.KindOf(err)
	switch kind {
	case domain.ErrorKindTimeout:
		return domain.SystemEntry(domain.EntryTypeError, "ERROR: Request timed out.")
	case domain.ErrorKindServer:
		text := "ERROR: " + serverSummary(err)
		if trace := serverTrace(err); trace != "" {
			text += "\n" + trace
		}
		return domain.SystemEntry(domain.EntryTypeError, text)
	case domain.ErrorKindMalformedResponse:
		return domain.SystemEntry(domain.EntryTypeError, "ERROR: Malformed server response.")
	default:
		return domain.SystemEntry(domain.EntryTypeError, "ERROR: Connection lost.")
	}
}

func hintFailureEntry(err error) domain.LogEntry {
	return domain.SystemEntry(domain.EntryTypeError, fmt.Sprintf("ERROR: Signal jammed. (%s)", shortReason(err)))
}

func loadFailureEntry(err error) domain.LogEntry {
	kind, _ := domain.KindOf(err)
	if kind == domain.ErrorKindServer {
		return domain.SystemEntry(domain.EntryTypeError, msgLoadFailed+" "+serverSummary(err))
	}
	return domain.SystemEntry(domain.EntryTypeError, msgLoadFailed)
}

func shortReason(err error) string {
	kind, ok := domain.KindOf(err)
	if !ok {
		return "unexpected failure"
	}

	switch kind {
	case domain.ErrorKindTimeout:
		return "timed out"
	case domain.ErrorKindUnreachable:
		return "server unreachable"
	case domain.ErrorKindServer:
		return serverSummary(err)
	case domain.ErrorKindMalformedResponse:
		return "malformed response"
	default:
		return string(kind)
	}
}

func serverSummary(err error) string {
	var sessionErr *domain.SessionError
	if !errors.As(err, &sessionErr) {
		return causeText(err)
	}

	message := strings.TrimSpace(sessionErr.Message)
	if message == "" {
		message = "server returned a failure status"
	}
	if sessionErr.Status != 0 {
		return fmt.Sprintf("[%d] %s", sessionErr.Status, message)
	}
	return message
}

func serverTrace(err error) string {
	var sessionErr *domain.SessionError
	if !errors.As(err, &sessionErr) {
		return ""
	}
	return strings.TrimSpace(sessionErr.Trace)
}

func causeText(err error) string {
	var sessionErr *domain.SessionError
	if errors.As(err, &sessionErr) {
		if sessionErr.Message != "" {
			return sessionErr.Message
		}
		if sessionErr.Err != nil {
			return sessionErr.Err.Error()
		}
	}
	return err.Error()
}
