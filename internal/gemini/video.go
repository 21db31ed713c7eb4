package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// videoPollTimeout bounds how long we wait for a generation job.
const videoPollTimeout = 10 * time.Minute

// videoOperation is the long-running operation envelope.
type videoOperation struct {
	Name     string `json:"name"`
	Done     bool   `json:"done"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type videoRequest struct {
	Instances  []videoInstance `json:"instances"`
	Parameters videoParameters `json:"parameters"`
}

type videoInstance struct {
	Prompt string `json:"prompt"`
}

type videoParameters struct {
	NumberOfVideos int    `json:"numberOfVideos"`
	Resolution     string `json:"resolution"`
	AspectRatio    string `json:"aspectRatio"`
}

// GenerateTimelineVideo starts a Veo job visualizing the goal's
// progress, polls until the operation completes, and writes the
// produced video to outPath. Blocking; pass a cancellable context.
func (c *Client) GenerateTimelineVideo(ctx context.Context, goalName, outPath string) error {
	prompt := fmt.Sprintf(`A cinematic 3D animation of a minimalist timeline or progress bar filling up steadily with a bright glowing neon light. The color scheme is professional royal blue and mint green. At the end of the path, a glowing symbol representing %q appears. Smooth motion graphics, clean background.`, goalName)

	op, err := c.startVideo(ctx, videoRequest{
		Instances: []videoInstance{{Prompt: prompt}},
		Parameters: videoParameters{
			NumberOfVideos: 1,
			Resolution:     "720p",
			AspectRatio:    "16:9",
		},
	})
	if err != nil {
		return err
	}

	uri, err := c.waitForVideo(ctx, op)
	if err != nil {
		return err
	}

	return c.downloadVideo(ctx, uri, outPath)
}

func (c *Client) startVideo(ctx context.Context, req videoRequest) (*videoOperation, error) {
	body, err := c.post(ctx, fmt.Sprintf("/models/%s:predictLongRunning", c.videoModel), req)
	if err != nil {
		return nil, err
	}

	var op videoOperation
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, fmt.Errorf("gemini: parsing operation: %w", err)
	}
	if op.Name == "" {
		return nil, errors.New("gemini: video job returned no operation name")
	}
	return &op, nil
}

// waitForVideo polls the operation until done and returns the media URI.
func (c *Client) waitForVideo(ctx context.Context, op *videoOperation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, videoPollTimeout)
	defer cancel()

	for !op.Done {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("gemini: waiting for video: %w", ctx.Err())
		case <-time.After(c.pollInterval):
		}

		body, err := c.get(ctx, "/"+op.Name)
		if err != nil {
			return "", err
		}
		if err := json.Unmarshal(body, op); err != nil {
			return "", fmt.Errorf("gemini: parsing operation: %w", err)
		}
	}

	if op.Error != nil {
		return "", fmt.Errorf("gemini: video generation failed: %s", op.Error.Message)
	}
	if op.Response == nil || len(op.Response.GenerateVideoResponse.GeneratedSamples) == 0 {
		return "", errors.New("gemini: video operation finished with no output")
	}
	return op.Response.GenerateVideoResponse.GeneratedSamples[0].Video.URI, nil
}

func (c *Client) downloadVideo(ctx context.Context, uri, outPath string) error {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+sep+"key="+c.apiKey, nil)
	if err != nil {
		return fmt.Errorf("gemini: creating download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gemini: downloading video: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gemini: video download status %d", resp.StatusCode)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("gemini: creating output file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("gemini: writing video: %w", err)
	}
	return nil
}
