package resmanblob

import (
	"bytes"
	"context"

	"github.com/go-logr/logr"
	"gocloud.dev/blob"
)

// WriteReport stores an encoded report at key, skipping the write if an
// identical report is already there.
func WriteReport(ctx context.Context, bucket *blob.Bucket, key, contentType string, report []byte) error {
	log := logr.FromContextOrDiscard(ctx).WithValues("key", key)

	if existing, err := bucket.ReadAll(ctx, key); err == nil && bytes.Equal(existing, report) {
		log.V(1).Info("report unchanged")
		return nil
	}

	log.Info("writing report")

	return Copy(ctx, bucket, key, contentType, bytes.NewReader(report))
}
