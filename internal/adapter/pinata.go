// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-jwt-vault/internal/config"
	"github.com/MKhiriev/go-jwt-vault/internal/logger"
	"github.com/MKhiriev/go-jwt-vault/internal/utils"
	"github.com/MKhiriev/go-jwt-vault/models"
)

const pinFileToIPFSPath = "/pinning/pinFileToIPFS"

// pinataPinResponse is the subset of the pinFileToIPFS answer the vault uses.
type pinataPinResponse struct {
	IpfsHash  string    `json:"IpfsHash"`
	PinSize   int64     `json:"PinSize"`
	Timestamp time.Time `json:"Timestamp"`
}

type pinataAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewPinataAdapter constructs the resty-backed [PinataAdapter]. The base URL
// comes from cfg.PinataURL ("https://api.pinata.cloud" in production) and may
// be given without a scheme.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewPinataAdapter(cfg config.ClientAdapter, log *logger.Logger) (PinataAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.PinataURL)
	if err != nil {
		return nil, fmt.Errorf("invalid pinata url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL:   baseURL,
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
	})

	return &pinataAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PinFile implements [PinataAdapter].
func (p *pinataAdapter) PinFile(ctx context.Context, jwt string, file models.UploadFile) (models.UploadResult, error) {
	if strings.TrimSpace(jwt) == "" {
		return models.UploadResult{}, ErrEmptyToken
	}
	if file.Content == nil {
		return models.UploadResult{}, ErrEmptyFile
	}

	name := file.Name
	if name == "" {
		name = "upload"
	}
	metadata, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("encode pinata metadata: %w", err)
	}

	p.logger.Debug().Str("func", "pinataAdapter.PinFile").Str("file", name).Msg("uploading to pinata")

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(jwt).
		SetFileReader("file", name, file.Content).
		SetFormData(map[string]string{"pinataMetadata": string(metadata)}).
		Post(pinFileToIPFSPath)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: pin request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		p.logger.Warn().Str("func", "pinataAdapter.PinFile").Int("status", resp.StatusCode()).Msg("pinata rejected upload")
		return models.UploadResult{}, err
	}

	var pinned pinataPinResponse
	if err = json.Unmarshal(resp.Body(), &pinned); err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: decode pinata response: %w", ErrUpstream, err)
	}
	if pinned.IpfsHash == "" {
		return models.UploadResult{}, fmt.Errorf("%w: %s", ErrMissingCID, strings.TrimSpace(string(resp.Body())))
	}

	return models.UploadResult{
		CID:       pinned.IpfsHash,
		PinSize:   pinned.PinSize,
		Timestamp: pinned.Timestamp,
	}, nil
}
