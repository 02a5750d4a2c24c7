// Package api is the HTTP client for the vehicle-tracking backend.
//
// # Overview
//
// The package provides:
//  1. A thin transport wrapper (Client.do and the generic get/post/put
//     helpers) that issues exactly one HTTP call per invocation: no retries,
//     no caching, no deduplication. Resiliency, if ever needed, belongs to
//     the backend or an explicit layer above this one.
//  2. A structured error model for failed exchanges. Every non-2xx response
//     is returned as *Error carrying the full wire context (status, method,
//     URL, raw request/response bodies, capture time). Callers match it with
//     errors.As, or use Extract and FormatMessage.
//  3. Typed methods and DTOs for every backend resource: tenants, vehicles,
//     fuel alerts, geofences, GPS positions, notifications, insurances,
//     parts, and technical inspections.
//
// # Error Handling
//
// A response body that cannot be read while capturing an error degrades to
// an empty ResponseBody; the capture itself never fails. On the success path
// a non-empty body that is not valid JSON is a hard failure and the decode
// error propagates.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
