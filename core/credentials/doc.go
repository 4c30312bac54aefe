// Package credentials provides the read-only accessor the request authorizer
// uses to fetch the current bearer token.
//
// The provider exists so that attaching a credential to an outgoing request
// is a pure local read: no network calls, no state mutation, and no coupling
// to the session state's notification machinery. The authorizer depends on
// this package alone; everything that writes tokens goes through the gateway.
package credentials
