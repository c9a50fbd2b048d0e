// Package promptviewer serves the registration form and the prompt viewer
// over net/http.
//
// Routes (relative to the mount base path):
//
//	GET  /                 registration form
//	POST /                 validate, sanitise, store, 303 to /prompt/1
//	GET  /prompt/{id}      prompt screen (303 to / without a registration)
//	GET  /prompt/{id}/raw  prompt text as text/plain
//	GET  /api/validate     {"valid":bool,"message":string}
//	GET  /openapi.yaml     API description
//	GET  /assets/          stylesheet and browser runtime
//	GET  /healthz          liveness
package promptviewer
