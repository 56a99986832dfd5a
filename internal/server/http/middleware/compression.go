package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxRequestBody is the largest request body, after decompression, that
// handlers may read.
const MaxRequestBody int64 = 1 << 20

type gzipBody struct {
	*gzip.Reader
	raw io.ReadCloser
}

func (b gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.raw.Close()
}

// DecompressRequest unpacks gzip encoded request bodies and caps every body
// at limit bytes. Reads past the cap fail with *http.MaxBytesError.
func DecompressRequest(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		body := c.Request.Body
		if strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(body)
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			body = gzipBody{Reader: reader, raw: body}
			c.Request.Header.Del("Content-Encoding")
			c.Request.ContentLength = -1
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, body, limit)
		c.Next()
	}
}
