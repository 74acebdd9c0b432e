// Sponsorcheck - UK Licensed Sponsor Register Lookup API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sponsorcheck

/*
Package supervisor provides process supervision for sponsorcheck using suture v4.

# Overview

	RootSupervisor ("sponsorcheck")
	├── StoreSupervisor ("store-layer")
	│   └── RegisterMonitorService (if STORE_MONITOR_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff once FailureThreshold failures
accumulate; failures decay at FailureDecay per second. Canceling the context
passed to Serve stops every service, waiting up to ShutdownTimeout for each.

Supervisor events (service failures, backoff, unstopped services) are logged
through sutureslog. main.go passes logging.NewSlogLogger() so they end up in
the same zerolog output as the rest of the application.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddStoreService(services.NewRegisterMonitorService(svc, 5*time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

See Also:

  - internal/supervisor/services: suture.Service wrappers
  - github.com/thejerf/suture/v4: supervision library
*/
package supervisor
