// Package cli provides the interactive Payego command-line client.
//
// It wires configuration, the session store, the snapshot cache, and the API
// services into an interactive REPL. Every screen that submits user input runs
// through the shared form state machine, and every outcome goes through the
// navigation policy, so auth failures, validation errors and connectivity
// problems are handled the same way everywhere.
//
// Key flows:
//   - Login / Register / email verification / password reset
//   - Dashboard with per-currency wallet balances
//   - Transaction history (served from the local snapshot when offline)
//   - Bank account linking and removal
//   - Transfers (internal and external), withdrawals, conversions, top-ups
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
