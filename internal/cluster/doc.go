// Package cluster models a locally running graph-database cluster: the
// immutable MachineSpec descriptions, the live Machine handles bound to
// docker containers, and the Service that owns both.
//
// The package also carries the target resolver used by the console to map
// a user-typed name token to the matching machines, and the routing
// Connector used to fetch a router's view of the cluster.
package cluster
