// Package api implements the HTTP boundary of the task gateway: request
// decoding and validation, mapping of internal error kinds to HTTP status
// codes, and the handlers for health checking and task submission.
package api
