// Package cli is the terminal front end of the vbank client. It owns the
// interactive prompts and the REPL, wires the session store, the HTTP client
// and the workflows together, and leaves all rendering to the ui package.
//
// The REPL dispatches commands to App methods through a narrow interface so
// the loop can be tested with stubs; the prompts use swappable helpers
// (getSimpleText, getSecret) for the same reason.
package cli
