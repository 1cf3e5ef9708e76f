package upload

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"scentpress-backend/internal/shared/response"
)

const contextKey = "upload.manifest"

const maxUploadBytes = 10 << 20 // per file

// Files returns middleware that runs the upload phase for a write route:
// every present file among the given form fields is uploaded through the
// store before the handler executes, and the resulting Manifest is placed
// on the context. Required-field checks happen later, in the pipeline —
// which is why the pipeline must compensate against the manifest when it
// rejects the request.
func Files(store Store, fields ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		manifest := Manifest{}

		form, err := c.MultipartForm()
		if err != nil {
			c.Set(contextKey, manifest)
			c.Next()
			return
		}

		for _, field := range fields {
			headers := form.File[field]
			if len(headers) == 0 {
				continue
			}

			file, err := headers[0].Open()
			if err != nil {
				manifest.Discard(c.Request.Context(), store)
				response.BadRequest(c, "cannot read uploaded file for "+field)
				c.Abort()
				return
			}

			data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
			file.Close()
			if err != nil || int64(len(data)) > maxUploadBytes {
				manifest.Discard(c.Request.Context(), store)
				response.BadRequest(c, "uploaded file for "+field+" is unreadable or too large")
				c.Abort()
				return
			}

			img, err := store.Store(c.Request.Context(), field, data, headers[0].Filename)
			if err != nil {
				manifest.Discard(c.Request.Context(), store)
				response.ErrorResponse(c, http.StatusInternalServerError,
					"UPLOAD_FAILED", "failed to store uploaded image")
				c.Abort()
				return
			}
			manifest[field] = img
		}

		c.Set(contextKey, manifest)
		c.Next()
	}
}

// FromContext returns the manifest produced by Files. Routes without the
// middleware get an empty manifest.
func FromContext(c *gin.Context) Manifest {
	if v, ok := c.Get(contextKey); ok {
		if m, ok := v.(Manifest); ok {
			return m
		}
	}
	return Manifest{}
}
