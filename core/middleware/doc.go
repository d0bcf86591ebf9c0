// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: gives every request an id, stored in Locals under "ray_id" and echoed in the
//     X-Ray-ID response header, so log lines from one request can be correlated.
//   - Auth: optional API key check on the /api group. With no key configured the API is open.
package middleware
