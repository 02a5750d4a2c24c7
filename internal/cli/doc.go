// Package cli implements the interactive admin console for the
// vehicle-tracking backend.
//
// # Overview
//
// The console is a read-eval-print loop over the backend REST API: listing
// and managing tenants and vehicles, inspecting notifications, fuel levels
// and last positions, and launching harness suites in process. A background
// websocket subscription prepends incoming notifications to the local list
// and its connection state is reflected in the prompt.
//
// # Error Handling
//
// Every backend failure is routed through the shared toast pipeline. No
// command keeps error state of its own; the user inspects failures with the
// toasts, detail and close commands.
package cli
