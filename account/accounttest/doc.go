// Package accounttest provides an in-process fake of the account API for
// tests. The fake serves the token-permissions and organization-quotas
// endpoints, can force error statuses per token, and counts the requests
// it receives.
package accounttest
