package backup

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
	"github.com/personalweb/portfolio-backend/internal/portfolio/store"
)

type nopBackend struct{}

func (nopBackend) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (nopBackend) Set(context.Context, string, string) error         { return nil }
func (nopBackend) Close() error                                      { return nil }

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, err := io.ReadAll(in.Body)
	f.body = b
	return &s3.PutObjectOutput{}, err
}

func TestRunOnce_FileSink(t *testing.T) {
	ctx := context.Background()
	f, err := portfolio.Provision(ctx, store.New(nopBackend{}))
	require.NoError(t, err)

	dir := t.TempDir()
	s := NewScheduler("@every 1h", FacadeSnapshot(f), FileSink{Dir: dir}, nil)
	s.now = func() time.Time { return time.Date(2025, 7, 8, 9, 10, 11, 0, time.UTC) }

	name, err := s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, "portfolio-20250708T091011Z.yaml", name)

	file, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer file.Close()

	got, err := codec.ReadSeed(file)
	require.NoError(t, err)
	assert.Equal(t, codec.DefaultSeed(), got)

	_, err = os.Stat(filepath.Join(dir, name+".tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunOnce_SnapshotError(t *testing.T) {
	boom := errors.New("boom")
	s := NewScheduler("@every 1h", func(context.Context) (codec.Seed, error) { return codec.Seed{}, boom }, FileSink{Dir: t.TempDir()}, nil)
	_, err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestS3Sink_Write(t *testing.T) {
	p := &fakePutter{}
	sink := NewS3Sink(p, "site-backups", "portfolio/")

	require.NoError(t, sink.Write(context.Background(), "x.yaml", codec.DefaultSeed()))
	assert.Equal(t, "site-backups", aws.ToString(p.in.Bucket))
	assert.Equal(t, "portfolio/x.yaml", aws.ToString(p.in.Key))
	assert.Contains(t, string(p.body), "E-Commerce Platform")
}

func TestScheduler_StartRejectsBadSpec(t *testing.T) {
	s := NewScheduler("not a schedule", nil, FileSink{Dir: t.TempDir()}, nil)
	assert.Error(t, s.Start())
	s.Stop()
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler("0 0 3 * * *", nil, FileSink{Dir: t.TempDir()}, nil)
	require.NoError(t, s.Start())
	require.NoError(t, s.Start())
	s.Stop()
}
