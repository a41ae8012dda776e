// Package ledger keeps an optional history of batch uploads in MySQL.
//
// Repository implements batch.Recorder, so a batch driver given a repository
// stores one upload_records row per file, including failures. Recent backs the
// history command.
package ledger
