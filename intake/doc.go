// Package intake is the thin service around the checker: it accepts
// MTB case-file uploads over HTTP, applies the severity contract to
// each check outcome, persists files and data-quality reports, and
// forwards usable files to the downstream query service.
//
// The decision table is:
//
//   - report has a fatal issue: reject the upload (422), store nothing
//   - no issues at all, or only informational ones: accept
//   - otherwise: accept and store the report alongside the file
//
// Accepted files are forwarded downstream unless the report carries
// errors.
package intake
