package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucket_KeyFromURL(t *testing.T) {
	bucket := &bucketImpl{
		name:   "creatives",
		public: "https://cdn.adscape.test",
		api:    "https://s3.adscape.test",
	}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public url from upload", url: "https://cdn.adscape.test/booking/1.png", want: "booking/1.png"},
		{name: "public url with bucket", url: "https://cdn.adscape.test/creatives/booking/1.png", want: "booking/1.png"},
		{name: "api endpoint url", url: "https://s3.adscape.test/creatives/booking/2.mp4", want: "booking/2.mp4"},
		{name: "relative path", url: "/uploads/1.png", want: ""},
		{name: "foreign host", url: "https://example.com/creatives/booking/1.png", want: ""},
		{name: "bare domain", url: "https://cdn.adscape.test/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bucket.KeyFromURL(tt.url))
		})
	}
}

func TestBucket_KeyFromURLWithoutPublicDomain(t *testing.T) {
	bucket := &bucketImpl{name: "creatives", api: "https://s3.adscape.test"}

	assert.Equal(t, "", bucket.KeyFromURL("/booking/1.png"))
	assert.Equal(t, "booking/1.png", bucket.KeyFromURL("https://s3.adscape.test/creatives/booking/1.png"))
}
