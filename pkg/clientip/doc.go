// Package clientip resolves the address of the HTTP client, which the API
// uses as the key for its issuance quota.
//
// Proxy headers are spoofable, so they are only consulted when the caller
// names them. Behind Cloudflare or a load balancer pass DefaultHeaders;
// exposed directly, pass none and RemoteAddr is used. IPv4-mapped IPv6
// addresses are unmapped and zones are dropped so one client gets one key.
package clientip
