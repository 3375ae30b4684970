package permission

import "strings"

const (
	// Separator delimits segments within a permission path.
	Separator = ":"

	// Wildcard matches any requested value at its position in a granted path.
	Wildcard = "*"
)

// Matches reports whether the requested permission path is covered by the
// effective (granted) path.
//
// A nil request acts as a match-all filter and returns true for any
// effective path. Otherwise both paths are split on Separator and compared
// positionally:
//
//   - an effective segment of Wildcard matches anything, including the
//     absence of a requested segment;
//   - an exhausted effective path matches any remaining request segments;
//   - an exhausted request path does not match a remaining concrete
//     effective segment;
//   - otherwise segments must be equal.
//
// The comparison short-circuits at the first mismatching position.
func Matches(request *string, effective string) bool {
	if request == nil {
		return true
	}

	requestParts := strings.Split(*request, Separator)
	effectiveParts := strings.Split(effective, Separator)

	for i, part := range effectiveParts {
		if part == Wildcard {
			continue
		}
		if i >= len(requestParts) || requestParts[i] != part {
			return false
		}
	}

	// Effective path exhausted: any trailing request segments are covered.
	return true
}

// MatchesAny reports whether any of the effective paths covers the request.
func MatchesAny(request *string, effective []string) bool {
	for _, e := range effective {
		if Matches(request, e) {
			return true
		}
	}
	return false
}
