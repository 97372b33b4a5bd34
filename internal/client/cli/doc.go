// Package cli provides the interactive LifeOS command-line client.
//
// It wires configuration, local storage, module services, and an interactive
// REPL. All state lives in the local database; the only network operation is
// archiving a journal entry to the remote agent endpoint.
//
// Key features:
//   - Dashboard: level, xp progress, today's deficit, 30-day activity heatmap
//   - Body: weight, meal building per slot, workouts, save-day history
//   - Mind: journal draft, typed entries, user-defined categories
//   - Music: practice logs
//   - Habits: daily checklist with automatic day rollover
//   - Export / Import / Reset of the whole store
//   - Archive: submit an entry to the remote agent for classification
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
