// Package serverrun boots the single-node hdelivery server.
package serverrun
