// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for API requests.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	apperrors "grocer/cli/internal/errors"
	"grocer/cli/internal/logging"

	"github.com/pterm/pterm"
)

// Present writes a user-facing explanation of err to w. context completes the
// sentence "... while <context>", e.g. "loading your lists".
func Present(w io.Writer, err error, context string) {
	if err == nil {
		return
	}
	log := logging.Get()
	log.Debug().Str("context", context).Str("error", logging.Mask(err.Error())).Msg("presenting error")

	var e *apperrors.E
	if !errors.As(err, &e) {
		if isNetworkError(err) {
			displayNetworkError(w, err, context)
			return
		}
		line(w, "❌ "+logging.PresentError(capitalize(context), err))
		return
	}

	switch e.Kind {
	case apperrors.Transport:
		displayNetworkError(w, err, context)
	case apperrors.Unauthorized:
		line(w, fmt.Sprintf("🔑 Not signed in while %s", context))
		line(w, "")
		if e.Message != "" && !strings.EqualFold(e.Message, "unauthorized") {
			line(w, "  "+e.Message)
		}
		line(w, "Your session is missing or has expired. Run: grocer login")
	case apperrors.Forbidden:
		line(w, fmt.Sprintf("🚫 Access denied while %s", context))
		line(w, "  "+e.Message)
		line(w, "Only the owner and people the list is shared with can see it.")
	case apperrors.NotFound:
		line(w, fmt.Sprintf("🔍 Not found while %s", context))
		line(w, "  "+e.Message)
	case apperrors.Validation, apperrors.Conflict:
		line(w, fmt.Sprintf("⚠️  %s", capitalize(logging.Mask(e.Message))))
	case apperrors.Server:
		showServerError(w, context)
	default:
		showGenericError(w, context, err.Error())
	}
}

func line(w io.Writer, s string) {
	pterm.Fprintln(w, s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func isNetworkError(err error) bool {
	var netErr net.Error
	var urlErr *url.Error
	return errors.As(err, &netErr) || errors.As(err, &urlErr)
}

// displayNetworkError shows a formatted error message based on error type.
func displayNetworkError(w io.Writer, err error, context string) {
	errStr := err.Error()

	if isTimeoutError(err) {
		showTimeoutError(w, context)
		return
	}

	if isDNSError(err) {
		showDNSError(w, context)
		return
	}

	if isConnectionRefusedError(err) {
		showConnectionRefusedError(w, context)
		return
	}

	if isSSLError(err) {
		showSSLError(w, context)
		return
	}

	showGenericError(w, context, errStr)
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

func showTimeoutError(w io.Writer, context string) {
	line(w, fmt.Sprintf("⏱️  Connection timeout while %s", context))
	line(w, "")
	line(w, "The grocer API took too long to respond. This could mean:")
	line(w, "  • Slow internet connection")
	line(w, "  • Server is under heavy load")
	line(w, "")
	line(w, "Please try again in a few moments.")
}

func showDNSError(w io.Writer, context string) {
	line(w, fmt.Sprintf("🌐 Cannot resolve server address while %s", context))
	line(w, "")
	line(w, "Please check:")
	line(w, "  • Your internet connection is working")
	line(w, "  • The API URL (grocer config show)")
}

func showConnectionRefusedError(w io.Writer, context string) {
	line(w, fmt.Sprintf("🚫 Connection refused while %s", context))
	line(w, "")
	line(w, "The grocer API is not accepting connections. This could mean:")
	line(w, "  • The API is not running")
	line(w, "  • Wrong server address or port (set GROCER_API_URL or --api-url)")
}

func showSSLError(w io.Writer, context string) {
	line(w, fmt.Sprintf("🔒 Secure connection failed while %s", context))
	line(w, "")
	line(w, "Cannot establish a secure HTTPS connection. Try:")
	line(w, "  • Check your system date and time")
	line(w, "  • Verify network proxy settings")
}

func showServerError(w io.Writer, context string) {
	line(w, fmt.Sprintf("⚠️  Server error while %s", context))
	line(w, "")
	line(w, "The grocer API encountered an internal error.")
	line(w, "This is not a problem with your setup. Please try again in a few minutes.")
}

func showGenericError(w io.Writer, context string, errDetails string) {
	line(w, fmt.Sprintf("❌ Cannot reach the grocer API while %s", context))
	line(w, "")
	line(w, "Please check:")
	line(w, "  • Your internet connection")
	line(w, "  • The API URL (grocer config show)")

	if errDetails != "" {
		shortErr := logging.Mask(errDetails)
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		line(w, "")
		line(w, "Technical details: "+shortErr)
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
