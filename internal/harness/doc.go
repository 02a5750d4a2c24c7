// Package harness is the API-level end-to-end test harness for the
// vehicle-tracking backend.
//
// # Overview
//
// The package provides:
//  1. Payload factories producing syntactically valid, uniquely tagged
//     payloads for every resource kind. Unique fields combine a millisecond
//     timestamp with random characters so concurrent runs do not collide.
//  2. Fixtures, a tracker for resources created on the backend's behalf of a
//     suite. Setup helpers create the minimum parent chain (tenant, then
//     vehicle) a child-resource suite needs; Teardown deletes everything in
//     reverse-creation order with best-effort deletes.
//  3. A suite engine. A Suite is an ordered list of dependent steps sharing
//     mutable state, an order-independent group of error-case steps, and an
//     unconditional teardown. Steps run strictly in declaration order with
//     no parallelism; after a serial step fails the remaining serial steps
//     are skipped, error cases still run, and teardown always runs.
//  4. Nine suite definitions covering the backend's REST surface, registered
//     by name (the allow-list the run endpoint accepts).
//
// Suites are deliberately never run in parallel: fixtures are suite-scoped,
// and a concurrent suite's teardown could delete a tenant another suite
// still references.
package harness
