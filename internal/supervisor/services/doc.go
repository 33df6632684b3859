// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

/*
Package services provides suture.Service wrappers for Scholarmach
components, translating their lifecycle patterns (ListenAndServe,
periodic loops) into suture's context-aware Serve pattern.

Each wrapper implements suture.Service plus fmt.Stringer for event
logging, returns errors so the supervisor can apply its restart
policy, and shuts down gracefully on context cancellation.
*/
package services
