// Package http implements the REST surface of the safe service.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as service-token authentication, request tracing, access
// logging and request timeouts are handled in this package before requests
// are delegated to the service layer.
package http
