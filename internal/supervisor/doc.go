// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

/*
Package supervisor provides process supervision for Scholarmach using suture v4.

The tree organizes long-running services into two layers for failure
isolation:

	Root ("scholarmach")
	├── DataSupervisor ("data-layer")
	│   └── ExpiryService (deadline sweeper)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the sweeper restarts only the data layer; the API keeps
serving. Supervisor events are logged through sutureslog, bridged to
the application's zerolog logger by the logging package's slog adapter.
*/
package supervisor
