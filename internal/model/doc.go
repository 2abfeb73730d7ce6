// Package model defines the NextHire domain documents and API error type.
//
// Jobs and applications are open documents: the store accepts whatever
// fields the caller supplies. The structs here type only the fields the
// system reads (ownership emails, the jobId weak reference, the
// denormalized job metadata) and round-trip everything else through an
// extension map, so a document posted with arbitrary fields comes back
// with all of them.
//
// An Application references its Job by the string form of the job's record
// id. The reference is weak: nothing enforces that the job exists, and
// read-time enrichment silently omits job metadata when it does not.
package model
