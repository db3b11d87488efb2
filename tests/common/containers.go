package common

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	twinImageRepo = "finqa-twin"
	twinImageTag  = "test"
	twinPort      = "5000/tcp"
)

var (
	buildOnce  sync.Once
	buildError error
)

// buildTwinImage builds the twin image once per test run
func buildTwinImage() error {
	buildOnce.Do(func() {
		ctx := context.Background()

		req := testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    findProjectRoot(),
					Dockerfile: "tests/docker/Dockerfile",
					Repo:       twinImageRepo,
					Tag:        twinImageTag,
					KeepImage:  true,
				},
			},
		}

		// Build via a throwaway container request to cache the image
		_, buildError = testcontainers.GenericContainer(ctx, req)
		if buildError != nil {
			// If container creation failed but image built, that's ok
			if strings.Contains(buildError.Error(), twinImageRepo+":"+twinImageTag) {
				buildError = nil
			}
		}
	})
	return buildError
}

// startTwinContainer runs the twin image (FINQA_TEST_IMAGE, or the image built
// from tests/docker/Dockerfile) and returns it with its API base URL.
func startTwinContainer(ctx context.Context, environment string) (testcontainers.Container, string, error) {
	image := os.Getenv("FINQA_TEST_IMAGE")
	if image == "" {
		if err := buildTwinImage(); err != nil {
			return nil, "", fmt.Errorf("build twin image: %w", err)
		}
		image = twinImageRepo + ":" + twinImageTag
	}

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{twinPort},
		Env: map[string]string{
			"FINQA_ENV":       environment,
			"FINQA_TWIN_HOST": "0.0.0.0",
			"FINQA_TWIN_PORT": "5000",
		},
		WaitingFor: wait.ForHTTP("/health").WithPort(twinPort).WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("start twin container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}
	port, err := container.MappedPort(ctx, twinPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}

	return container, fmt.Sprintf("http://%s:%s/api", host, port.Port()), nil
}
