package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{
			name:       "valid uri",
			uri:        "s3://metrics/hospital/initial_metrics.csv",
			wantBucket: "metrics",
			wantObject: "hospital/initial_metrics.csv",
		},
		{
			name:    "no object",
			uri:     "s3://metrics/",
			wantErr: true,
		},
		{
			name:    "other scheme",
			uri:     "https://metrics/initial_metrics.csv",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, err := ParseObjectURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}

func TestIsObjectURI(t *testing.T) {
	assert.True(t, IsObjectURI("s3://bucket/key.csv"))
	assert.False(t, IsObjectURI("data/initial_metrics.csv"))
}

func TestNewObjectSource(t *testing.T) {
	cfg := ObjectConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	}

	src, err := NewObjectSource(cfg, "s3://metrics/initial_metrics.csv")
	assert.NoError(t, err)
	assert.Equal(t, "metrics", src.bucket)
	assert.Equal(t, "initial_metrics.csv", src.object)

	for _, uri := range []string{
		"s3://metrics/initial_metrics.parquet",
		"s3://metrics",
		"gs://metrics/initial_metrics.csv",
	} {
		_, err = NewObjectSource(cfg, uri)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr, uri)
		assert.Equal(t, uri, loadErr.Source)
	}
}
