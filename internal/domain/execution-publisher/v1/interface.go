package executionpublisherv1

import "context"

// ExecutionPublisher defines the interface for publishing the outcome of each submitted order.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=executionpublisherv1_mock
type ExecutionPublisher interface {
	// Publish delivers a single execution report.
	Publish(ctx context.Context, execution Execution) error
}
