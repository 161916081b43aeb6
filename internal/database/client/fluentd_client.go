package client

import (
	"time"

	"staffdir/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// Client 抽象 Fluentd 轉送，方便測試時替換
type Client interface {
	Post(tag string, message any) error
	Tag(suffix string) string
	Close() error
}

// FluentdClient 連接 Fluentd
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (Client, func(), error) {
	if !config.Fluentd.Enabled {
		logger.Info("Fluentd disabled, request/response logs stay local")
		return &NoopClient{}, func() {}, nil
	}

	prefix := config.Fluentd.TagPrefix
	if prefix == "" {
		prefix = "staffdir"
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Fluentd")

	fluentdClient := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := fluentdClient.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return fluentdClient, cleanup, nil
}

// Tag 以設定的 TagPrefix 組合完整 tag
func (c *FluentdClient) Tag(suffix string) string {
	if c.tagPrefix == "" {
		return suffix
	}
	return c.tagPrefix + "." + suffix
}

func (c *FluentdClient) Post(tag string, message any) error {
	return c.client.Post(tag, message)
}

// Close 關閉 Fluentd 連線
func (c *FluentdClient) Close() error {
	return c.client.Close()
}

// NoopClient 在 Fluentd 未啟用時丟棄所有訊息
type NoopClient struct{}

func (NoopClient) Post(tag string, message any) error { return nil }
func (NoopClient) Tag(suffix string) string           { return suffix }
func (NoopClient) Close() error                       { return nil }
