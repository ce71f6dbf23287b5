// Package service provides domain services for tokenadm.
//
// Domain services contain pure business logic over domain models.
// They never touch the terminal or the token file; the menu loads a
// table, hands it to a service operation and persists the result.
//
// This package contains:
//
//   - TokenService: add, remove, rename, extend, set expiry,
//     bulk-expire cleanup and statistics over a token table
package service
