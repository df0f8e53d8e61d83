// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport-level errors. They are mapped to statuses by statusFromError
// like the service errors.
var (
	// errInvalidPathID is returned when an {id} path segment is not a
	// positive integer. It renders as 404, the same as an unknown id.
	errInvalidPathID = errors.New("invalid id in path")

	// errMalformedForm is returned when the request body cannot be parsed
	// as a form.
	errMalformedForm = errors.New("malformed form body")

	// errRouteNotFound is used for unknown paths and unsupported methods.
	errRouteNotFound = errors.New("route not found")
)
