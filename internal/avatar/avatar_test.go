package avatar

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTranscode_ScalesDownKeepingAspect(t *testing.T) {
	out, err := Transcode(bytes.NewReader(pngOf(t, 512, 256)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestTranscode_KeepsSmallImages(t *testing.T) {
	out, err := Transcode(bytes.NewReader(pngOf(t, 64, 100)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestTranscode_RejectsGarbage(t *testing.T) {
	_, err := Transcode(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLocalStore_WritesFileAndReturnsURL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "avatars")
	s := NewLocalStore(dir, "/avatars/")

	url, err := s.Put(context.Background(), "t1.webp", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "/avatars/t1.webp", url)

	got, err := os.ReadFile(filepath.Join(dir, "t1.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)
}

type putRecorder struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (p *putRecorder) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return nil, errors.New("not used")
}

func (p *putRecorder) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.key = *in.Key
	p.contentType = *in.ContentType
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	p.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_PutsUnderPrefix(t *testing.T) {
	rec := &putRecorder{}
	s := NewS3Store(rec, "bucket", "marketplace/", "https://cdn.example.com")

	url, err := s.Put(context.Background(), "t1.webp", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "marketplace/avatars/t1.webp", rec.key)
	assert.Equal(t, "image/webp", rec.contentType)
	assert.Equal(t, []byte("data"), rec.body)
	assert.Equal(t, "https://cdn.example.com/marketplace/avatars/t1.webp", url)
}

func TestS3Store_WrapsPutError(t *testing.T) {
	boom := errors.New("boom")
	s := NewS3Store(&putRecorder{err: boom}, "bucket", "", "https://cdn.example.com")

	_, err := s.Put(context.Background(), "t1.webp", []byte("data"))
	assert.ErrorIs(t, err, boom)
}
