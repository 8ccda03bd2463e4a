package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"rating_widget/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	// ReadyChecks опрашиваются на /ready, nil пропускаются.
	ReadyChecks map[string]probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	for name, check := range p.ReadyChecks {
		if check != nil {
			probeServer = probeServer.WithReadyCheck(name, check)
		}
	}

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
