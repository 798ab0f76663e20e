// Package shopsdk is a Go client for the vitrine storefront gateway.
//
// It holds the wire types shared between the gateway's HTTP handlers and
// this SDK, plus a Session that carries the auth cookies the gateway sets
// and transparently refreshes the access token when it expires.
package shopsdk
