// Package deploy pushes a generated file map to Netlify and waits for the
// deploy to go live. Every failure mode is reported through the result
// value; the client never panics and callers never need recover.
package deploy

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"bizforge/internal/common/config"
	"bizforge/internal/common/errors"
	"bizforge/internal/common/logger"
	"bizforge/internal/common/metrics"
	"bizforge/internal/models"
)

// Client talks to the Netlify REST API. Construct it with NewClient; the
// token comes in through config, never from the process environment.
type Client struct {
	http *resty.Client
	cfg  config.DeployConfig
	log  logger.Logger
}

func NewClient(cfg config.DeployConfig, log logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(config.GetDuration(cfg.RequestTimeout)).
		SetHeader("User-Agent", "bizforge-deploy")

	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	return &Client{http: httpClient, cfg: cfg, log: log}
}

type siteResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	SSLURL string `json:"ssl_url"`
}

type deployResponse struct {
	ID       string   `json:"id"`
	State    string   `json:"state"`
	Required []string `json:"required"`
	SSLURL   string   `json:"ssl_url"`
}

// Deploy creates a uniquely named site, uploads the file map and polls
// until the deploy is live. The returned result carries success, the live
// URL or a failure reason; it never returns a Go error.
func (c *Client) Deploy(ctx context.Context, biz models.BusinessInfo, files models.FileMap) models.DeployResult {
	if c.cfg.Token == "" {
		return c.failure(errors.NewDeployTokenMissingError().Message)
	}

	siteName := SiteName(biz.Name, c.cfg.SuffixLength)
	log := c.log.WithFields(map[string]interface{}{
		"site_name":  siteName,
		"file_count": len(files),
	})

	site, err := c.createSite(ctx, siteName)
	if err != nil {
		log.Error("site creation failed", map[string]interface{}{"error": err.Error()})
		return c.failure(errors.NewSiteCreateFailedError(err.Error()).Message)
	}

	digests, byDigest := digestFiles(files)
	dep, err := c.createDeploy(ctx, site.ID, digests)
	if err != nil {
		log.Error("deploy creation failed", map[string]interface{}{
			"site_id": site.ID,
			"error":   err.Error(),
		})
		return c.failure(errors.NewDeployCreateFailedError(err.Error()).Message)
	}

	for _, digest := range dep.Required {
		content, ok := byDigest[digest]
		if !ok {
			continue
		}
		if err := c.uploadFile(ctx, dep.ID, digest, content); err != nil {
			log.Error("file upload failed", map[string]interface{}{
				"deploy_id": dep.ID,
				"digest":    digest,
				"error":     err.Error(),
			})
			return c.failure(errors.NewFileUploadFailedError(digest, err).Message)
		}
		metrics.DeployFileUploads.Inc()
	}

	url := site.SSLURL
	if url == "" {
		url = site.URL
	}

	result := c.awaitLive(ctx, dep.ID, url)
	if result.Success {
		log.Info("deploy live", map[string]interface{}{"url": result.NetlifyURL})
		metrics.DeploysTotal.WithLabelValues("success").Inc()
	} else {
		metrics.DeploysTotal.WithLabelValues("failure").Inc()
	}
	return result
}

func (c *Client) failure(reason string) models.DeployResult {
	metrics.DeploysTotal.WithLabelValues("failure").Inc()
	return models.DeployResult{Success: false, Error: reason}
}

func (c *Client) createSite(ctx context.Context, name string) (*siteResponse, error) {
	var site siteResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(&site).
		Post("/sites")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("POST /sites returned %s", resp.Status())
	}
	return &site, nil
}

func (c *Client) createDeploy(ctx context.Context, siteID string, digests map[string]string) (*deployResponse, error) {
	var dep deployResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"files": digests}).
		SetResult(&dep).
		Post("/sites/" + siteID + "/deploys")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("POST /sites/%s/deploys returned %s", siteID, resp.Status())
	}
	return &dep, nil
}

func (c *Client) uploadFile(ctx context.Context, deployID, digest, content string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody([]byte(content)).
		Put("/deploys/" + deployID + "/files/" + digest)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("upload returned %s", resp.Status())
	}
	return nil
}

// awaitLive polls the deploy until it is ready, failed, or the attempt
// budget is spent. The budget is a hard ceiling: exactly MaxPollAttempts
// polls, never more.
func (c *Client) awaitLive(ctx context.Context, deployID, siteURL string) models.DeployResult {
	interval := config.GetDuration(c.cfg.PollInterval)

	for attempt := 1; attempt <= c.cfg.MaxPollAttempts; attempt++ {
		var dep deployResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&dep).
			Get("/deploys/" + deployID)

		if err == nil && !resp.IsError() {
			switch dep.State {
			case "ready":
				url := dep.SSLURL
				if url == "" {
					url = siteURL
				}
				return models.DeployResult{Success: true, NetlifyURL: url}
			case "error":
				return models.DeployResult{
					Success: false,
					Error:   errors.NewDeployFailedError(deployID).Message,
				}
			}
		}

		if attempt == c.cfg.MaxPollAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return models.DeployResult{Success: false, Error: ctx.Err().Error()}
		case <-time.After(interval):
		}
	}

	return models.DeployResult{
		Success: false,
		Error:   errors.NewDeployTimedOutError(c.cfg.MaxPollAttempts).Message,
	}
}

// digestFiles computes the SHA-1 digest map Netlify expects (leading-slash
// paths to hex digests) plus the reverse lookup used for uploads.
func digestFiles(files models.FileMap) (map[string]string, map[string]string) {
	digests := make(map[string]string, len(files))
	byDigest := make(map[string]string, len(files))
	for path, content := range files {
		sum := sha1.Sum([]byte(content))
		digest := hex.EncodeToString(sum[:])
		digests["/"+strings.TrimPrefix(path, "/")] = digest
		byDigest[digest] = content
	}
	return digests, byDigest
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a business name, drops apostrophes and collapses
// everything else outside [a-z0-9] into single hyphens.
func Slugify(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), "'", "")
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "site"
	}
	return slug
}

// SiteName appends a random suffix to the slug so repeated deploys of the
// same business never collide on the global site namespace.
func SiteName(businessName string, suffixLen int) string {
	if suffixLen <= 0 {
		suffixLen = 6
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
	return Slugify(businessName) + "-" + suffix
}
