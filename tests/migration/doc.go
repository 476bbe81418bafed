/*
Package migration provides framework to test migration of the Teams Registry
smart contract.

The contract keeps registered teams and the manager role, so its data must be
carried through contract updates without loss. Contract restores the dumped
contract (see package dump) in a test chain, updates it to the executable
compiled from the current source code and reads the state back through the
contract API as dump.Registry, so it can be compared with the dumped one.
*/
package migration
