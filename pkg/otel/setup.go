package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
)

func Setup(ctx context.Context, name, version string) error {
	if !EnableTelemetry {
		return nil
	}

	resource := sdkresource.NewSchemaless(
		attribute.String("service.name", name),
		attribute.String("service.version", version),
	)

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	return nil
}
