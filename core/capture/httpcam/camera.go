// Package httpcam acquires still frames from an IP-camera style snapshot
// endpoint that returns a JPEG per request.
package httpcam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riteshh/seeforme-core/core/capture"
)

type Camera struct {
	snapshotURL string
	httpClient  *http.Client
}

type CameraOption func(*Camera)

func WithSnapshotURL(url string) CameraOption {
	return func(c *Camera) { c.snapshotURL = url }
}

func WithHTTPClient(client *http.Client) CameraOption {
	return func(c *Camera) { c.httpClient = client }
}

func NewCamera(opts ...CameraOption) (*Camera, error) {
	c := &Camera{
		snapshotURL: os.Getenv("CAMERA_SNAPSHOT_URL"),
		httpClient: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.snapshotURL == "" {
		return nil, fmt.Errorf("camera snapshot url not configured")
	}
	return c, nil
}

// AcquireFrame fetches a single snapshot. Device and permission problems
// surface as capture.ErrCaptureFailed, as do implausibly small payloads.
func (c *Camera) AcquireFrame(ctx context.Context) (capture.Frame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.snapshotURL, nil)
	if err != nil {
		return capture.Frame{}, fmt.Errorf("%w: building snapshot request: %v", capture.ErrCaptureFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return capture.Frame{}, fmt.Errorf("%w: camera unavailable: %v", capture.ErrCaptureFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return capture.Frame{}, fmt.Errorf("%w: camera permission denied (status %d)", capture.ErrCaptureFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return capture.Frame{}, fmt.Errorf("%w: snapshot status %d", capture.ErrCaptureFailed, resp.StatusCode)
	}

	frame, err := io.ReadAll(resp.Body)
	if err != nil {
		return capture.Frame{}, fmt.Errorf("%w: reading snapshot: %v", capture.ErrCaptureFailed, err)
	}
	if len(frame) < capture.MinFrameBytes {
		return capture.Frame{}, fmt.Errorf("%w: frame too small (%d bytes)", capture.ErrCaptureFailed, len(frame))
	}

	return capture.Frame{Bytes: frame, CapturedAt: time.Now()}, nil
}
