package awsregistry

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/arcline/connect-mcp/internal/errs"
)

func stubLoader(t *testing.T, calls *int) Option {
	t.Helper()
	return WithConfigLoader(func(ctx context.Context, region, profile string) (aws.Config, error) {
		*calls++
		return aws.Config{Region: region}, nil
	})
}

func TestConnectClientIsCachedPerRegion(t *testing.T) {
	var loads, constructions int
	r := New("us-west-2", "",
		stubLoader(t, &loads),
		WithConnectConstructor(func(c aws.Config) ConnectAPI {
			constructions++
			return nil
		}),
	)

	ctx := context.Background()
	if _, err := r.Connect(ctx, "us-east-1"); err != nil {
		t.Fatalf("first get: %v", err)
	}
	if _, err := r.Connect(ctx, "us-east-1"); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if constructions != 1 {
		t.Fatalf("expected 1 construction for repeated region, got %d", constructions)
	}

	if _, err := r.Connect(ctx, "eu-west-2"); err != nil {
		t.Fatalf("other region: %v", err)
	}
	if constructions != 2 {
		t.Fatalf("expected a new construction for a new region, got %d", constructions)
	}
	if loads != 2 {
		t.Fatalf("expected 2 config loads, got %d", loads)
	}
}

func TestEmptyRegionFallsBackToDefault(t *testing.T) {
	var loads int
	var gotRegion string
	r := New("ap-southeast-2", "",
		stubLoader(t, &loads),
		WithConnectConstructor(func(c aws.Config) ConnectAPI {
			gotRegion = c.Region
			return nil
		}),
	)
	if _, err := r.Connect(context.Background(), ""); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotRegion != "ap-southeast-2" {
		t.Fatalf("expected default region, got %q", gotRegion)
	}
}

func TestServicesAreCachedIndependently(t *testing.T) {
	var connectN, casesN int
	var loads int
	r := New("us-west-2", "",
		stubLoader(t, &loads),
		WithConnectConstructor(func(aws.Config) ConnectAPI { connectN++; return nil }),
		WithCasesConstructor(func(aws.Config) CasesAPI { casesN++; return nil }),
	)
	ctx := context.Background()
	if _, err := r.Connect(ctx, "us-west-2"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if _, err := r.Cases(ctx, "us-west-2"); err != nil {
		t.Fatalf("cases: %v", err)
	}
	if connectN != 1 || casesN != 1 {
		t.Fatalf("expected one construction each, got connect=%d cases=%d", connectN, casesN)
	}
	// The aws.Config for the region is shared between services.
	if loads != 1 {
		t.Fatalf("expected a single shared config load, got %d", loads)
	}
}

func TestConstructionFailureIsConfigError(t *testing.T) {
	wantErr := errors.New("no credentials")
	r := New("us-west-2", "", WithConfigLoader(
		func(ctx context.Context, region, profile string) (aws.Config, error) {
			return aws.Config{}, wantErr
		},
	))
	_, err := r.Connect(context.Background(), "us-west-2")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *errs.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}
