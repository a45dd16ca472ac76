// Package http exposes the bid analysis service over a chi HTTP API.
// Handlers return structured JSON only; all presentation formatting is the
// consumer's responsibility.
package http
