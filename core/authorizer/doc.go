// Package authorizer implements the authenticated-request pipeline as an
// http.RoundTripper.
//
// Every outbound request moves through a small, strictly terminating state
// machine: classify → attach → in flight → done, with a single
// refresh-and-retry detour on an authorization failure:
//
//	Classifying → Attaching → InFlight → Success
//	                                   ↘ Unauthorized → Refreshing → Retrying → Success
//	                                                              ↘ Failed      ↘ Failed
//
// Requests matching the public allow-list (the auth endpoints themselves)
// bypass the pipeline entirely: no credential, no retry, whatever the status.
// This is what prevents a refresh-on-refresh cycle.
//
// Protected requests get the current bearer token attached when one is held;
// when none is, the request goes out bare and the server's rejection is the
// outcome — intentionally, since absence of a token is not an error at this
// layer. A 401 response triggers exactly one refresh (shared across all
// concurrent 401s, see core/gateway) and exactly one replay of the original
// request. A second 401 after a successful refresh is surfaced as-is; a
// failed refresh surfaces the original 401, not the refresh error, because
// the caller's failure path should reflect the action it attempted.
//
// Wire it as the transport of the http.Client used for API calls:
//
//	transport, _ := authorizer.New(provider, gw)
//	client := &http.Client{Transport: transport}
package authorizer
