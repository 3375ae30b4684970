// Package permission implements hierarchical permission path matching.
//
// Permission paths are colon-delimited scopes such as "request:auth:read".
// A granted path may contain the wildcard segment "*", which matches any
// requested value at that position:
//
//	permission.Matches(util.Ptr("request:auth:read"), "request:auth:*") // true
//	permission.Matches(util.Ptr("request:auth:read"), "request:*")      // true
//	permission.Matches(util.Ptr("request:auth:read"), "request:log:*")  // false
//	permission.Matches(nil, "anything")                                 // true
//
// Matching is performed segment by segment from left to right and stops at
// the first mismatch. A granted path shorter than the request covers the
// trailing request segments; a request shorter than the granted path does
// NOT cover concrete trailing granted segments.
package permission
