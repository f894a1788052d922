// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"

	apperrors "grocer/cli/internal/errors"
)

// PresentError formats an error for user display with masking. Typed API
// errors show their message without the kind prefix.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var e *apperrors.E
	if errors.As(err, &e) && e.Message != "" {
		msg = e.Message
	}
	return fmt.Sprintf("%s: %s", context, Mask(msg))
}
