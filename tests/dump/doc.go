/*
Package dump provides I/O operations for collected states of the Teams
Registry contract.

A dump is a single JSON file '<label>-<block>.json' holding the contract
state, raw storage items at the given height and the registry decoded from
them: the manager, pending proposal, verifier, counter, pause flag, metadata
and all registered teams. The decoded part is there for humans reading the
dump and for tests comparing the migrated contract with the dumped one. It is
checked against the raw storage when the dump is read.

Dumps are written by 'teamsctl dump' and read by the migration tests (see
package migration).
*/
package dump
