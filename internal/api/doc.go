// Package api handles incoming HTTP requests, request validation and
// response formatting for the tasks endpoint. It translates the query
// shape and method of a request into store operations and renders the
// result through the shared response envelope.
package api
