package providers

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionMiddleware gzips API responses for clients that accept it.
// PNG logos are already compressed and pass through untouched.
func CompressionMiddleware(next http.Handler) (http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(512),
		gzhttp.ExceptContentTypes([]string{"image/png"}),
	)
	if err != nil {
		return nil, err
	}
	return wrap(next), nil
}
