// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// They are used as request correlation IDs: being time-sortable, log lines
// grouped by request_id also sort by arrival.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string, falling back to a random UUIDv4 if the
// clock-based generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
