// Package pod implements the container store against a user-owned pod
// server. The server exposes whole-resource GET/PUT semantics only, so
// every write is a probe-then-write pair: fetch the container, add the
// record, save the whole container back; an absent container selects
// the create path instead.
//
// The probe-then-write pair is not atomic. Writes to the same locator
// are serialised within this process; two sessions racing on a
// not-yet-created locator can still both observe absence and the second
// create wins. That cross-session race is accepted, not solved here.
package pod
