package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

// sqsBatchSize is the SQS limit of entries per SendMessageBatch call.
const sqsBatchSize = 10

// SQSAPI is the part of the SQS client the publisher needs.
type SQSAPI interface {
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

func NewSQSPublisher(client SQSAPI, queueURL string) (*SQSPublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("queueURL is empty")
	}

	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
	}, nil
}

// Publish sends the events in batches. Entries rejected by SQS fail the whole call so the relay
// retries them; consumers must tolerate duplicates.
func (p *SQSPublisher) Publish(ctx context.Context, events []domain.OrderEvent) error {
	for start := 0; start < len(events); start += sqsBatchSize {
		end := min(start+sqsBatchSize, len(events))

		out, err := p.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
			QueueUrl: aws.String(p.queueURL),
			Entries:  toSQSEntries(events[start:end]),
		})
		if err != nil {
			return fmt.Errorf("client.SendMessageBatch: %w", err)
		}

		if len(out.Failed) > 0 {
			return batchError(out.Failed)
		}
	}

	return nil
}

func toSQSEntries(events []domain.OrderEvent) []sqstypes.SendMessageBatchRequestEntry {
	entries := make([]sqstypes.SendMessageBatchRequestEntry, 0, len(events))
	for _, event := range events {
		entries = append(entries, sqstypes.SendMessageBatchRequestEntry{
			Id:          aws.String(event.ID.String()),
			MessageBody: aws.String(string(event.Payload)),
			MessageAttributes: map[string]sqstypes.MessageAttributeValue{
				headerEventType: {
					DataType:    aws.String("String"),
					StringValue: aws.String(string(event.Type)),
				},
			},
		})
	}
	return entries
}

func batchError(failed []sqstypes.BatchResultErrorEntry) error {
	errs := make([]error, 0, len(failed))
	for _, entry := range failed {
		errs = append(errs, fmt.Errorf("entry[%s]: %s: %s",
			aws.ToString(entry.Id), aws.ToString(entry.Code), aws.ToString(entry.Message)))
	}
	return errors.Join(errs...)
}
