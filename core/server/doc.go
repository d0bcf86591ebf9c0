// Package server holds the HTTP server configuration and the shared error rendering.
//
// Every error reaching the client has the shape {"error": "..."}. Coded errors from
// core/apperrors pick the status; anything else is a 500. NewApp installs ErrorHandler so
// handlers may simply return errors.
package server
