// Copyright (c) 2025-2026 The croissantctl Authors
// SPDX-License-Identifier: Apache-2.0

package croissant

import "fmt"

// NotFoundError reports a selector that matched nothing in the dataset
// description.
type NotFoundError struct {
	Resource string // e.g. "record set", "file object"
	ID       string // the selector that missed
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Resource, e.ID)
}
