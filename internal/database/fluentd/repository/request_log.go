package repository

import (
	"context"
	"encoding/json"
	"time"

	"staffdir/config"
	"staffdir/internal/core"
	"staffdir/internal/database/client"
	"staffdir/internal/database/fluentd/model"
)

// LogRepository 統一負責發送 Request/Response/Search Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.Client
	version       string
}

func NewLogRepository(config *config.Configuration, client client.Client) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	b, _ := json.Marshal(req)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	return repository.fluentdClient.Post(repository.fluentdClient.Tag(string(core.FluentdRequest)), fluentdMessage)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	b, _ := json.Marshal(resp)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	return repository.fluentdClient.Post(repository.fluentdClient.Tag(string(core.FluentdResponse)), fluentdMessage)
}

func (repository *LogRepository) LogSearch(ctx context.Context, search model.SearchLog) error {
	if search.LoggedAt == "" {
		search.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if search.Version == "" {
		search.Version = repository.version
	}
	b, _ := json.Marshal(search)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	return repository.fluentdClient.Post(repository.fluentdClient.Tag(string(core.FluentdSearch)), fluentdMessage)
}
