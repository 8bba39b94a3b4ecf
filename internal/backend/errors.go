package backend

//
// errors.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when backend respond with non-success status.
type StatusError struct {
	Status int
	// Message is error message sent by backend (if any).
	Message string
}

func (s *StatusError) Error() string {
	if s.Message != "" {
		return fmt.Sprintf("backend error %d: %s", s.Status, s.Message)
	}

	return fmt.Sprintf("backend error %d: %s", s.Status, http.StatusText(s.Status))
}

// RejectionMessage return message sent by backend with error response; empty when
// error was not caused by backend rejection or backend did not provide message.
func RejectionMessage(err error) string {
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.Message
	}

	return ""
}
