package billboard

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// responseDump mirrors fetched pages into the web-cache directory so a
// page can be inspected after the fact. Dump failures only log; the copy
// is not part of the fetch contract.
type responseDump struct {
	dir    string
	logger *zap.Logger
}

func (d responseDump) write(resp *resty.Response) {
	// Error pages are not charts; keep them out of the mirror.
	if !resp.IsSuccess() {
		return
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		d.logger.Warn("creating web cache dir", zap.Error(err))
		return
	}
	name := fmt.Sprintf("%x", sha256.Sum256([]byte(resp.Request.URL)))
	if err := os.WriteFile(filepath.Join(d.dir, name), resp.Body(), 0o644); err != nil {
		d.logger.Warn("writing web cache entry",
			zap.String("url", resp.Request.URL),
			zap.Error(err))
	}
}
