// Package placement implements per-output workspace numbering.
//
// Every active output owns a band of global workspace numbers starting at
// its offset: stride × (rank of its name among the active outputs). A
// workspace with local number n on an output with offset o is named
// "<o+n>: <n>", so the same local number can exist once per output.
//
// The Engine turns a request (switch, move container, move workspace) into
// a Plan of window-manager commands. A Plan is either applied to the
// session or printed; both paths share the same planning code.
//
// Plans are not transactional. If a command is rejected, the commands
// before it stay applied and the returned *errors.CommandError reports how
// many there were.
package placement
