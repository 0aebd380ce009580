package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/nikolayk812/swiftcart/internal/config"
	"github.com/nikolayk812/swiftcart/internal/events"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/nikolayk812/swiftcart/internal/repository"
	"github.com/nikolayk812/swiftcart/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func relayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "publish order events from the outbox until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if cfg.EventsSink == config.SinkNone {
				return fmt.Errorf("EVENTS_SINK is %q, nothing to relay to", config.SinkNone)
			}

			publisher, closer, err := newPublisher(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := closer.Close(); err != nil {
					logger.WithError(err).Warn("close publisher")
				}
			}()

			pool, err := connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			relay := service.NewRelay(repository.NewStore(pool), publisher, logger)

			logger.WithFields(logrus.Fields{
				"sink":     cfg.EventsSink,
				"interval": cfg.RelayInterval.String(),
				"batch":    cfg.RelayBatch,
			}).Info("relay started")

			return relay.Run(ctx, cfg.RelayInterval, cfg.RelayBatch)
		},
	}
}

func newPublisher(ctx context.Context, cfg config.Config) (port.EventPublisher, io.Closer, error) {
	switch cfg.EventsSink {
	case config.SinkKafka:
		publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("events.NewKafkaPublisher: %w", err)
		}
		return publisher, publisher, nil

	case config.SinkSQS:
		awsCfg, err := events.LoadAWSConfig(ctx, cfg.AWSRegion, cfg.AWSEndpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("events.LoadAWSConfig: %w", err)
		}

		publisher, err := events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.QueueURL)
		if err != nil {
			return nil, nil, fmt.Errorf("events.NewSQSPublisher: %w", err)
		}
		return publisher, noopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("EVENTS_SINK[%s] is unknown", cfg.EventsSink)
	}
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
