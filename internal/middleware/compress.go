package middleware

import (
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compress 依 Accept-Encoding 協商回應壓縮：br > zstd > gzip
type Compress struct{}

func NewCompress() *Compress {
	return &Compress{}
}

type compressWriter struct {
	gin.ResponseWriter
	writer io.Writer
}

func (w *compressWriter) Write(data []byte) (int, error) {
	w.Header().Del("Content-Length")
	return w.writer.Write(data)
}

func (w *compressWriter) WriteString(s string) (int, error) {
	w.Header().Del("Content-Length")
	return w.writer.Write([]byte(s))
}

func (middleware *Compress) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		// metrics/pprof 等由各自的 handler 處理輸出，不介入
		if strings.HasPrefix(endpoint, "/metrics") ||
			strings.HasPrefix(endpoint, "/debug") ||
			strings.HasPrefix(endpoint, "/swagger") {
			c.Next()
			return
		}

		acceptEncoding := c.GetHeader("Accept-Encoding")

		var encoder io.WriteCloser
		var encoding string
		switch {
		case strings.Contains(acceptEncoding, "br"):
			encoding = "br"
			encoder = brotli.NewWriter(c.Writer)
		case strings.Contains(acceptEncoding, "zstd"):
			zstdWriter, err := zstd.NewWriter(c.Writer)
			if err != nil {
				c.Next()
				return
			}
			encoding = "zstd"
			encoder = zstdWriter
		case strings.Contains(acceptEncoding, "gzip"):
			encoding = "gzip"
			encoder = gzip.NewWriter(c.Writer)
		default:
			c.Next()
			return
		}

		c.Header("Content-Encoding", encoding)
		c.Header("Vary", "Accept-Encoding")

		original := c.Writer
		c.Writer = &compressWriter{ResponseWriter: original, writer: encoder}

		defer func() {
			_ = encoder.Close()
			c.Writer = original
		}()

		c.Next()
	}
}
