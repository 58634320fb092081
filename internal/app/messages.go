// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the terminal UI
// and the command line, so both describe the same outcome the same way.
package app

const (
	// MsgServerUnavailable replaces low-level transport errors such as
	// "connection refused" or an expired request deadline.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgLoginRequired is shown when an action needs a session and there is
	// none, or the backend rejected the stored token.
	MsgLoginRequired = "please log in first"

	// MsgSessionExpired is shown once the stored token has been dropped
	// because it ran out.
	MsgSessionExpired = "session expired, please log in again"

	// MsgForbidden is shown when the backend refuses an action on a resource
	// that belongs to someone else.
	MsgForbidden = "you are not allowed to do that"

	// MsgNotFound is shown for a 404 without a backend message.
	MsgNotFound = "not found"

	MsgLoggedIn    = "logged in"
	MsgLoggedOut   = "logged out"
	MsgRegistered  = "account created"
	MsgPostSaved   = "post saved"
	MsgPostDeleted = "post deleted"
	MsgCommentSent = "comment posted"
	MsgLinkCopied  = "link copied to clipboard"

	// MsgFieldsRequired is shown when a form is submitted with empty
	// mandatory inputs.
	MsgFieldsRequired = "all fields are required"

	// MsgPasswordsDiffer is shown when the registration password and its
	// confirmation do not match.
	MsgPasswordsDiffer = "passwords do not match"
)
