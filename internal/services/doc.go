// Package services contains the business logic layer between the HTTP
// transport and the observation, dataprocessing and palette packages.
//
// AnalysisService runs the full pipeline on a batch of per-file row
// sets: merge, focal-follow extraction (merged and per file), the
// consistency checks, and color assignment. HealthService reports
// process health for the /api/health endpoint.
package services
