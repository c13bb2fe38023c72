// Package cli provides the interactive DataV command-line client.
//
// It wires configuration, the two local persistence scopes, the session
// store, the API client and services, and runs a REPL over them. The REPL
// owns navigation: when the API client reports an expired session it asks
// for credentials again.
//
// Commands:
//   - register, login, logout, me
//   - forget: wipe everything stored on this device
//   - plans
//   - projects, project <id>, newproject, rmproject <id>
//   - upload <project-id> <path>, files <project-id>, status <file-id>
//   - stats, health
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
