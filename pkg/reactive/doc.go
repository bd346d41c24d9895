// Package reactive provides the state primitives vangoui widgets are built on.
//
// Signal is an observable value cell. Owner is a disposal scope: widgets own
// one, register cleanups on it and check IsDisposed before applying deferred
// mutations. Scheduler runs deferred callbacks; SystemScheduler uses wall
// time and ManualScheduler is a test clock advanced explicitly.
package reactive
